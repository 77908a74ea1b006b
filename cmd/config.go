package cmd

// Config carries every deployment-specific setting of the service.
// All tariff amounts are integer rupiah.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OSRMBaseURL points at the routing engine. The service stays up when the
	// engine is down; quotes degrade to straight-line estimates.
	OSRMBaseURL string
	// WebhookURL receives courier-assigned notifications. Empty disables them.
	WebhookURL string

	// BasecampLat and BasecampLon anchor the D1 leg of every fee calculation.
	BasecampLat float64
	BasecampLon float64

	TariffMinimumFee       int64
	TariffBaseKm           float64
	TariffRatePerKm        int64
	TariffRoundTo          int64
	TariffExpressSurcharge int64
}
