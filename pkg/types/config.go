package types

import "time"

// DatasetConfig holds settings for the dataset loader.
type DatasetConfig struct {
	// Path is the location of the publications CSV (default "data/publications.csv").
	Path string `json:"path" yaml:"path"`
}

// AnalysisConfig holds the tunable constants of the aggregation stage.
// The consistency epsilon and minimum-record threshold are heuristics
// carried over from the source methodology; they have no derived "correct"
// value and are therefore configuration rather than constants.
type AnalysisConfig struct {
	// ConsistencyEpsilon is added to the standard deviation before dividing
	// when computing the consistency score (default 0.01).
	ConsistencyEpsilon float64 `json:"consistency_epsilon" yaml:"consistency_epsilon"`

	// ConsistencyMinRecords excludes countries with fewer qualifying rows
	// from the consistency ranking (default 10).
	ConsistencyMinRecords int `json:"consistency_min_records" yaml:"consistency_min_records"`

	// EliteTop1Threshold marks a record as high-excellence when its top-1%
	// share exceeds this percentage (default 2.0).
	EliteTop1Threshold float64 `json:"elite_top1_threshold" yaml:"elite_top1_threshold"`

	// EarlyPeriodEnd is the last year of the "early" trend window (default 2007).
	EarlyPeriodEnd int `json:"early_period_end" yaml:"early_period_end"`

	// RecentPeriodStart is the first year of the "recent" trend window (default 2021).
	RecentPeriodStart int `json:"recent_period_start" yaml:"recent_period_start"`

	// TopN is the row count for ranking tables (default 10).
	TopN int `json:"top_n" yaml:"top_n"`

	// ExcellenceTopN is the country count for the excellence chart (default 15).
	ExcellenceTopN int `json:"excellence_top_n" yaml:"excellence_top_n"`
}

// ServerConfig holds settings for the HTTP dashboard server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeout is the HTTP server read timeout.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the HTTP server write timeout.
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
}

// SnapshotConfig holds settings for the SQLite snapshot writer.
type SnapshotConfig struct {
	// Path is the SQLite database file to write (default "snapshots/metrics.db").
	Path string `json:"path" yaml:"path"`
}

// Config groups all component configurations.
type Config struct {
	Dataset  DatasetConfig  `json:"dataset" yaml:"dataset"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	Snapshot SnapshotConfig `json:"snapshot" yaml:"snapshot"`
}

// Default values applied by Normalized and the command layer.
const (
	DefaultDatasetPath           = "data/publications.csv"
	DefaultConsistencyEpsilon    = 0.01
	DefaultConsistencyMinRecords = 10
	DefaultEliteTop1Threshold    = 2.0
	DefaultEarlyPeriodEnd        = 2007
	DefaultRecentPeriodStart     = 2021
	DefaultTopN                  = 10
	DefaultExcellenceTopN        = 15
	DefaultServerAddr            = ":8080"
	DefaultSnapshotPath          = "snapshots/metrics.db"
)

// Normalized returns a copy with zero-valued fields replaced by defaults.
func (c AnalysisConfig) Normalized() AnalysisConfig {
	if c.ConsistencyEpsilon <= 0 {
		c.ConsistencyEpsilon = DefaultConsistencyEpsilon
	}
	if c.ConsistencyMinRecords <= 0 {
		c.ConsistencyMinRecords = DefaultConsistencyMinRecords
	}
	if c.EliteTop1Threshold <= 0 {
		c.EliteTop1Threshold = DefaultEliteTop1Threshold
	}
	if c.EarlyPeriodEnd == 0 {
		c.EarlyPeriodEnd = DefaultEarlyPeriodEnd
	}
	if c.RecentPeriodStart == 0 {
		c.RecentPeriodStart = DefaultRecentPeriodStart
	}
	if c.TopN <= 0 {
		c.TopN = DefaultTopN
	}
	if c.ExcellenceTopN <= 0 {
		c.ExcellenceTopN = DefaultExcellenceTopN
	}
	return c
}
