package model

// Service is the subset of a Fastly service listing the audit needs.
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Version is one saved configuration revision of a service.
type Version struct {
	Number int  `json:"number"`
	Active bool `json:"active"`
}

// Backend is an origin definition attached to a service version.
type Backend struct {
	Name     string `json:"name,omitempty"`
	Hostname string `json:"hostname"`
	Address  string `json:"address"`
}

// MatchResult identifies a service routing traffic to the target WAF origin.
type MatchResult struct {
	CustomerID      string `json:"customer_id"`
	ServiceID       string `json:"service_id"`
	Version         int    `json:"version"`
	BackendHostname string `json:"backend_hostname"`
	BackendAddress  string `json:"backend_address"`
}

// Summary counts what a run touched.
type Summary struct {
	Customers        int
	CustomersSkipped int
	Services         int
	ServicesSkipped  int
	Backends         int
	Matches          int
}
