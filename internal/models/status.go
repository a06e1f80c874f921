package models

// StoreStatus is the diagnostic payload returned by GET /test. The field set
// mirrors what operators expect from the deployment dashboard checks.
type StoreStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
