package configs

// Ingest tunes the upload pipeline.
type Ingest struct {
	// Workers is the number of rows built concurrently.
	Workers int `env:"WORKERS" envDefault:"4"`
	// RatesAsPercent declares that uploaded rate and ROI columns are
	// percentages (5 for five percent) rather than fractions.
	RatesAsPercent bool `env:"RATES_AS_PERCENT" envDefault:"false"`
	// DeriveStatus recomputes every campaign status from its dates instead
	// of trusting the uploaded value.
	DeriveStatus bool `env:"DERIVE_STATUS" envDefault:"false"`
}

// Seed controls sample data generation on startup.
type Seed struct {
	// Campaigns is the number of sample campaigns inserted into an empty
	// store. Zero disables seeding.
	Campaigns int `env:"CAMPAIGNS" envDefault:"0"`
}
