package mocknvml

import "github.com/NVIDIA/go-nvml/pkg/nvml"

const unknownError = "Unknown error"

var errorStrings = map[nvml.Return]string{
	nvml.SUCCESS:                       "Success",
	nvml.ERROR_UNINITIALIZED:           "NVML was not first initialized with nvmlInit()",
	nvml.ERROR_INVALID_ARGUMENT:        "A supplied argument is invalid",
	nvml.ERROR_NOT_SUPPORTED:           "The requested operation is not available on target device",
	nvml.ERROR_NO_PERMISSION:           "The current user does not have permission",
	nvml.ERROR_ALREADY_INITIALIZED:     "Multiple initializations are now allowed",
	nvml.ERROR_NOT_FOUND:               "A query to find an object was unsuccessful",
	nvml.ERROR_INSUFFICIENT_SIZE:       "An input argument is not large enough",
	nvml.ERROR_INSUFFICIENT_POWER:      "A device's external power cables are not properly attached",
	nvml.ERROR_DRIVER_NOT_LOADED:       "NVIDIA driver is not loaded",
	nvml.ERROR_TIMEOUT:                 "User provided timeout passed",
	nvml.ERROR_IRQ_ISSUE:               "NVIDIA Kernel detected an interrupt issue with a GPU",
	nvml.ERROR_LIBRARY_NOT_FOUND:       "NVML Shared Library couldn't be found or loaded",
	nvml.ERROR_FUNCTION_NOT_FOUND:      "Local version of NVML doesn't implement this function",
	nvml.ERROR_CORRUPTED_INFOROM:       "infoROM is corrupted",
	nvml.ERROR_GPU_IS_LOST:             "The GPU has fallen off the bus or has otherwise become inaccessible",
	nvml.ERROR_RESET_REQUIRED:          "The GPU requires a reset before it can be used again",
	nvml.ERROR_OPERATING_SYSTEM:        "The GPU control device has been blocked by the operating system/cgroups",
	nvml.ERROR_LIB_RM_VERSION_MISMATCH: "RM detects a driver/library version mismatch",
	nvml.ERROR_IN_USE:                  "An operation cannot be performed because the GPU is currently in use",
	nvml.ERROR_MEMORY:                  "Insufficient memory",
	nvml.ERROR_NO_DATA:                 "No data",
	nvml.ERROR_VGPU_ECC_NOT_SUPPORTED:  "The requested vgpu operation is not available on target device",
	nvml.ERROR_INSUFFICIENT_RESOURCES:  "Ran out of critical resources, other than memory",
	nvml.ERROR_UNKNOWN:                 unknownError,
}

// ErrorString describes ret. Codes outside the table map to
// "Unknown error". It needs no session.
func ErrorString(ret nvml.Return) string {
	if s, ok := errorStrings[ret]; ok {
		return s
	}
	return unknownError
}

// ErrorString is the method form of the package function.
func (l *Library) ErrorString(ret nvml.Return) string {
	return ErrorString(ret)
}
