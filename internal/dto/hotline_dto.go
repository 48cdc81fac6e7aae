package dto

type HotlineResponse struct {
	Key         string `json:"key"`
	Country     string `json:"country"`
	Emergency   string `json:"emergency,omitempty"`
	Crisis      string `json:"crisis,omitempty"`
	Service     string `json:"service,omitempty"`
	ReferralUrl string `json:"referral_url,omitempty"`
}

type ListHotlinesResponse struct {
	Hotlines []HotlineResponse `json:"hotlines"`
}
