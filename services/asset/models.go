package assetservice

type RegisterAssetReq struct {
	Name         string `json:"name" validate:"required"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}
