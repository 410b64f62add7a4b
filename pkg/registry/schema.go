// pkg/registry/schema.go
package registry

// Activity is one schedulable offering with a capacity and a roster of
// registered participant emails. The activity name is the registry key, not a
// field, so the marshaled value matches the external JSON contract exactly.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SeedActivity is one activity entry in the seed file.
type SeedActivity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SeedFile is the on-disk seed format the registry is built from at startup.
type SeedFile struct {
	Version     string         `json:"version"`
	LastUpdated string         `json:"lastUpdated"`
	Activities  []SeedActivity `json:"activities"`
}
