package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Default(t *testing.T) {
	table, err := Machine(DefaultMachine)
	require.NoError(t, err)
	assert.Equal(t, DGXA100(), table)
	assert.Contains(t, Machines(), DefaultMachine)
}

func TestMachine_Unknown(t *testing.T) {
	_, err := Machine("dgxh100")
	require.ErrorIs(t, err, ErrUnknownMachine)
	assert.Contains(t, err.Error(), `"dgxh100"`)
	assert.Contains(t, err.Error(), DefaultMachine)
}

func TestRegister(t *testing.T) {
	Register("pair", func() *Table { return Fallback(2, "NVIDIA A100-PCIE-40GB") })
	t.Cleanup(func() {
		machinesMu.Lock()
		delete(machines, "pair")
		machinesMu.Unlock()
	})

	table, err := Machine("pair")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())
	assert.Equal(t, []string{DefaultMachine, "pair"}, Machines())
}

func TestFallback(t *testing.T) {
	table := Fallback(10, "NVIDIA H100 80GB HBM3")

	require.Equal(t, 10, table.Count())
	assert.Empty(t, table.Validate())
	for i, rec := range table.Devices {
		assert.Equal(t, "NVIDIA H100 80GB HBM3", rec.Name)
		assert.Equal(t, i, rec.MinorNumber)
	}
	// past the built-in set the UUIDs are derived
	assert.Equal(t, DGXA100().Devices[7].UUID, table.Devices[7].UUID)
	assert.Equal(t, DeriveUUID(table.Devices[9].Serial), table.Devices[9].UUID)

	assert.Equal(t, a100Name, Fallback(1, "").Devices[0].Name)
}
