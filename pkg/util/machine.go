package util

import "github.com/denisbrodbeck/machineid"

// GetMachineID returns a stable per-host identifier. Falls back to a fixed
// string when the platform does not expose one, so token signing still works.
func GetMachineID() string {
	id, err := machineid.ProtectedID("club-cal-service")
	if err != nil {
		return "unknown-machine"
	}
	return id
}
