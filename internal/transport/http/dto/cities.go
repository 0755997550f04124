package dto

type CityResp struct {
	ID       string `json:"id"`
	PostCode string `json:"post_code,omitempty"`
	Name     string `json:"name"`
}

type CityReq struct {
	ID       string `json:"id" validate:"required"`
	PostCode string `json:"post_code,omitempty" validate:"omitempty,post_code"`
	Name     string `json:"name" validate:"required"`
}

type ReplaceCitiesReq struct {
	Cities []CityReq `json:"cities" validate:"max=10000,dive"`
}

type PostCodesResp struct {
	PostCodes []string `json:"post_codes"`
}
