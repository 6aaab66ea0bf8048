package fixture

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationError describes one invalid field of a table.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}

// Validate checks table-wide invariants.
func (t *Table) Validate() []ValidationError {
	var errors []ValidationError

	if len(t.Devices) == 0 {
		errors = append(errors, ValidationError{Path: "devices", Message: "at least one device is required"})
	}
	if t.System.DriverVersion == "" {
		errors = append(errors, ValidationError{Path: "system.driver_version", Message: "must not be empty"})
	}
	if t.System.NVMLVersion == "" {
		errors = append(errors, ValidationError{Path: "system.nvml_version", Message: "must not be empty"})
	}

	uuids := make(map[string]int, len(t.Devices))
	busIDs := make(map[string]int, len(t.Devices))
	for i := range t.Devices {
		errors = append(errors, validateDevice(&t.Devices[i], i)...)

		rec := &t.Devices[i]
		if prev, ok := uuids[rec.UUID]; ok {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("devices[%d].uuid", i),
				Message: fmt.Sprintf("duplicates devices[%d]", prev),
			})
		}
		uuids[rec.UUID] = i

		key := strings.ToUpper(rec.PCI.BusID)
		if prev, ok := busIDs[key]; ok {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("devices[%d].bus_id", i),
				Message: fmt.Sprintf("duplicates devices[%d]", prev),
			})
		}
		busIDs[key] = i
	}

	return errors
}

func validateDevice(rec *DeviceRecord, i int) []ValidationError {
	var errors []ValidationError
	path := func(field string) string {
		return fmt.Sprintf("devices[%d].%s", i, field)
	}

	if rec.Index != i || rec.MinorNumber != i {
		errors = append(errors, ValidationError{Path: path("index"), Message: "must match table position"})
	}
	if rec.Name == "" {
		errors = append(errors, ValidationError{Path: path("name"), Message: "must not be empty"})
	}
	if !ValidUUID(rec.UUID) {
		errors = append(errors, ValidationError{
			Path:    path("uuid"),
			Message: fmt.Sprintf("must be 'GPU-' followed by a UUID, got '%s'", rec.UUID),
		})
	}
	if rec.Memory.Used > rec.Memory.Total {
		errors = append(errors, ValidationError{
			Path:    path("memory_used_bytes"),
			Message: fmt.Sprintf("must not exceed total %d, got %d", rec.Memory.Total, rec.Memory.Used),
		})
	} else if rec.Memory.Free+rec.Memory.Used != rec.Memory.Total {
		errors = append(errors, ValidationError{Path: path("memory"), Message: "free + used must equal total"})
	}
	if rec.Clocks.Graphics > rec.MaxClocks.Graphics || rec.Clocks.SM > rec.MaxClocks.SM || rec.Clocks.Memory > rec.MaxClocks.Memory {
		errors = append(errors, ValidationError{Path: path("clocks"), Message: "current clocks must not exceed max_clocks"})
	}
	if rec.PowerUsageMW > rec.PowerLimitMW {
		errors = append(errors, ValidationError{
			Path:    path("power_usage_mw"),
			Message: fmt.Sprintf("must not exceed power_limit_mw %d, got %d", rec.PowerLimitMW, rec.PowerUsageMW),
		})
	}

	return errors
}

// ValidUUID reports whether s has the GPU-<uuid> form.
func ValidUUID(s string) bool {
	rest, ok := strings.CutPrefix(s, "GPU-")
	if !ok {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil && len(rest) == 36
}

func formatValidationErrors(errors []ValidationError) string {
	if len(errors) == 1 {
		return errors[0].Error()
	}
	result := fmt.Sprintf("%d validation errors:\n", len(errors))
	for _, err := range errors {
		result += "  - " + err.Error() + "\n"
	}
	return result
}
