package entities

// Settings document ids in the settings table.
const (
	SettingsGeneralID = "general"
	SettingsAssetsID  = "assets"
)

const (
	GatewayModeSandbox    = "sandbox"
	GatewayModeProduction = "production"
)

// GeneralSettings holds gateway and supplier credentials plus the admin password.
type GeneralSettings struct {
	TripayAPIKey       string `json:"tripay_api_key"`
	TripayPrivateKey   string `json:"tripay_private_key"`
	TripayMerchantCode string `json:"tripay_merchant_code"`
	TripayMode         string `json:"tripay_mode"`
	DigiflazzUsername  string `json:"digiflazz_username"`
	DigiflazzAPIKey    string `json:"digiflazz_api_key"`
	AdminPassword      string `json:"admin_password"`
}

// GatewayCredentials extracts what the payment gateway client needs.
func (s GeneralSettings) GatewayCredentials() GatewayCredentials {
	return GatewayCredentials{
		APIKey:       s.TripayAPIKey,
		PrivateKey:   s.TripayPrivateKey,
		MerchantCode: s.TripayMerchantCode,
		Mode:         s.TripayMode,
	}
}

func (s GeneralSettings) SupplierCredentials() SupplierCredentials {
	return SupplierCredentials{Username: s.DigiflazzUsername, APIKey: s.DigiflazzAPIKey}
}

// Assets are the storefront visuals managed from the admin panel.
type Assets struct {
	Sliders []string          `json:"sliders"`
	Banners map[string]string `json:"banners"`
}

type GatewayCredentials struct {
	APIKey       string
	PrivateKey   string
	MerchantCode string
	Mode         string
}

func (c GatewayCredentials) Configured() bool {
	return c.APIKey != "" && c.PrivateKey != "" && c.MerchantCode != ""
}

type SupplierCredentials struct {
	Username string
	APIKey   string
}

func (c SupplierCredentials) Configured() bool {
	return c.Username != "" && c.APIKey != ""
}
