package fixture

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/google/uuid"
)

const (
	a100Name            = "NVIDIA A100-SXM4-40GB"
	a100BoardPartNumber = "699-21001-0000-000"
	a100DeviceID        = 0x20B010DE
	a100SubsystemID     = 0x134F10DE
	a100MemoryBytes     = 42949672960
	a100BAR1Bytes       = 68719476736
	a100PowerUsageMW    = 100000
	a100PowerLimitMW    = 400000
	a100GraphicsMHz     = 1410
	a100MemoryMHz       = 1593
	a100SMCount         = 108
	a100CopyEngines     = 5
	a100BaseTempC       = 30
	pciClassDisplay     = 0x03
	pciSubClass3D       = 0x02
)

// DefaultSystem is the driver identity of the built-in table.
var DefaultSystem = SystemInfo{
	DriverVersion:     "550.54.15",
	NVMLVersion:       "12.550.54",
	CUDADriverVersion: 12040,
	DriverBranch:      "r550_00",
}

var dgxA100UUIDs = []string{
	"GPU-4404041a-04cf-1ccf-9e70-f139a9b1e23c",
	"GPU-b8ea3855-276c-c9cb-b366-c6fa655957c5",
	"GPU-36da4373-4344-3b36-9951-6c7af0e8d7a0",
	"GPU-3dc6c589-3bea-2eb8-263e-d7a5b2b3b1ba",
	"GPU-7e8ad30b-b5d9-cd98-3fcf-9b3e4d2ba6a0",
	"GPU-e81b08cb-3aa9-4add-d834-1d3f537ea20f",
	"GPU-eca0e2dd-3d99-2271-10fd-1939fec48d42",
	"GPU-c9dea5de-06db-44ff-c80f-ce1d407e77ba",
}

// uuidNamespace seeds name-based UUIDs for devices beyond the built-in set.
var uuidNamespace = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")

// DGXA100 returns the built-in eight-device DGX A100 table.
func DGXA100() *Table {
	devices := make([]DeviceRecord, len(dgxA100UUIDs))
	for i := range devices {
		devices[i] = templateRecord(i)
	}
	return &Table{System: DefaultSystem, Devices: devices}
}

// templateRecord returns the A100 record for position index. Positions past
// the built-in set get a serial and UUID derived from the index.
func templateRecord(index int) DeviceRecord {
	serial := fmt.Sprintf("1563221%06d", index+1)
	id := DeriveUUID(serial)
	if index < len(dgxA100UUIDs) {
		id = dgxA100UUIDs[index]
	}

	return DeviceRecord{
		Index:           index,
		Name:            a100Name,
		UUID:            id,
		Serial:          serial,
		BoardPartNumber: a100BoardPartNumber,
		MinorNumber:     index,
		Brand:           nvml.BRAND_TESLA,
		PCI:             pciForBus(uint32(index)),
		Memory:          MemoryInfo{Total: a100MemoryBytes, Free: a100MemoryBytes},
		BAR1:            MemoryInfo{Total: a100BAR1Bytes, Free: a100BAR1Bytes},
		Clocks:          Clocks{Graphics: a100GraphicsMHz, SM: a100GraphicsMHz, Memory: a100MemoryMHz},
		MaxClocks:       Clocks{Graphics: a100GraphicsMHz, SM: a100GraphicsMHz, Memory: a100MemoryMHz},
		TemperatureC:    a100BaseTempC + uint32(index),
		PowerUsageMW:    a100PowerUsageMW,
		PowerLimitMW:    a100PowerLimitMW,
		ComputeMajor:    8,
		ComputeMinor:    0,
		PersistenceMode: nvml.FEATURE_ENABLED,
		DisplayMode:     nvml.FEATURE_DISABLED,
		DisplayActive:   nvml.FEATURE_DISABLED,
		ComputeMode:     nvml.COMPUTEMODE_DEFAULT,

		MultiprocessorCount:   a100SMCount,
		SharedCopyEngineCount: a100CopyEngines,
	}
}

func pciForBus(bus uint32) PCIInfo {
	return PCIInfo{
		Domain:      0,
		Bus:         bus,
		Device:      0,
		DeviceID:    a100DeviceID,
		SubsystemID: a100SubsystemID,
		BaseClass:   pciClassDisplay,
		SubClass:    pciSubClass3D,
		BusID:       fmt.Sprintf("%08X:%02X:00.0", 0, bus),
		BusIDLegacy: fmt.Sprintf("%04X:%02X:00.0", 0, bus),
	}
}

// DeriveUUID returns a stable GPU UUID for serial.
func DeriveUUID(serial string) string {
	return "GPU-" + uuid.NewSHA1(uuidNamespace, []byte(serial)).String()
}
