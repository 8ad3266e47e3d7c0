package worksite

type WorkSiteResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

type ListWorkSiteResponse struct {
	TotalCount int                `json:"total_count"`
	WorkSites  []WorkSiteResponse `json:"work_sites"`
}
