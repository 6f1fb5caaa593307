package common

const (
	DefaultConfigPath       = "configs/config-checker.yaml"
	DefaultInputPath        = "earnings_data.json"
	DefaultThresholdPercent = 20

	HongKongSymbolSuffix = ".HK"
	CurrencyPrefixHKD    = "HK$"
	CurrencyPrefixUSD    = "$"
)
