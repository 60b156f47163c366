package entity

// FeatureOption describes one toggle shown on the feature-selection step.
// Basic features are always on and coming-soon features cannot be enabled;
// only the remaining options are user-toggleable.
type FeatureOption struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Enabled      bool   `json:"enabled"`
	IsBasic      bool   `json:"is_basic"`
	IsComingSoon bool   `json:"is_coming_soon"`
}

// Feature option IDs persisted as business-profile flags.
const (
	FeatureAutoReply       = "auto_reply"
	FeatureProductCatalog  = "product_catalog"
	FeatureOrderManagement = "order_management"
	FeaturePaymentSystem   = "payment_system"
)

// FeatureCatalog returns the feature options offered during onboarding,
// with Enabled reflecting the given profile's current flags.
func FeatureCatalog(profile *BusinessProfile) []FeatureOption {
	return []FeatureOption{
		{
			ID:          FeatureAutoReply,
			Title:       "Balas Otomatis",
			Description: "Chatbot menjawab pertanyaan pelanggan dari basis pengetahuan",
			Enabled:     true,
			IsBasic:     true,
		},
		{
			ID:          FeatureProductCatalog,
			Title:       "Katalog Produk",
			Description: "Kelola dan tampilkan produk kepada pelanggan",
			Enabled:     profile.FeatureProductCatalog,
		},
		{
			ID:          FeatureOrderManagement,
			Title:       "Manajemen Pesanan",
			Description: "Terima dan lacak pesanan dari percakapan",
			Enabled:     profile.FeatureOrderManagement,
		},
		{
			ID:           FeaturePaymentSystem,
			Title:        "Sistem Pembayaran",
			Description:  "Terima pembayaran langsung di dalam chat",
			Enabled:      false,
			IsComingSoon: true,
		},
	}
}
