// pkg/registry/schema.go
package registry

// ContractRegistry is the published list of record contracts.
type ContractRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Contracts   []Contract `json:"contracts"`
}

type Contract struct {
	ID             string                 `json:"id"`
	DisplayName    string                 `json:"displayName"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category"`
	Mode           string                 `json:"mode"`
	Schema         map[string]interface{} `json:"schema"`
	EmbeddedFields []string               `json:"embeddedFields"`
	Tags           []string               `json:"tags"`
}
