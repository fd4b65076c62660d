package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "intseq"

	OracleCallsMetric          = Namespace + "_oracle_calls_total"
	GeneratorResumptionsMetric = Namespace + "_generator_resumptions_total"
	ScanBlocksMetric           = Namespace + "_scan_blocks_total"
	ScanFoundMetric            = Namespace + "_scan_found_total"
	ConstructionsMetric        = Namespace + "_constructions_total"
	ConstructionSecondsMetric  = Namespace + "_construction_duration_seconds"
)

var (
	opLabels       = []string{"op"}
	sequenceLabels = []string{"sequence"}
)

// Collectors groups the counters of one registry. A nil *Collectors is
// valid and records nothing.
type Collectors struct {
	oracleCalls          *prometheus.CounterVec
	generatorResumptions *prometheus.CounterVec
	scanBlocks           *prometheus.CounterVec
	scanFound            *prometheus.CounterVec
	constructions        *prometheus.CounterVec
	constructionSeconds  *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		oracleCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: OracleCallsMetric,
			Help: "Calls into the arithmetic oracle, by operation.",
		}, opLabels),
		generatorResumptions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: GeneratorResumptionsMetric,
			Help: "Terms produced by resuming a recurrence generator.",
		}, sequenceLabels),
		scanBlocks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: ScanBlocksMetric,
			Help: "Blocks of integers searched by a batch scan.",
		}, sequenceLabels),
		scanFound: factory.NewCounterVec(prometheus.CounterOpts{
			Name: ScanFoundMetric,
			Help: "Members found by a batch scan.",
		}, sequenceLabels),
		constructions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: ConstructionsMetric,
			Help: "Sequence instances constructed by the registry.",
		}, sequenceLabels),
		constructionSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    ConstructionSecondsMetric,
			Help:    "Time spent constructing a sequence instance.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, sequenceLabels),
	}
}

func (c *Collectors) OracleCall(op string) {
	if c == nil {
		return
	}
	c.oracleCalls.WithLabelValues(op).Inc()
}

func (c *Collectors) Resumed(sequence string) {
	if c == nil {
		return
	}
	c.generatorResumptions.WithLabelValues(sequence).Inc()
}

func (c *Collectors) Scanned(sequence string, found int) {
	if c == nil {
		return
	}
	c.scanBlocks.WithLabelValues(sequence).Inc()
	c.scanFound.WithLabelValues(sequence).Add(float64(found))
}

func (c *Collectors) Constructed(sequence string, took time.Duration) {
	if c == nil {
		return
	}
	c.constructions.WithLabelValues(sequence).Inc()
	c.constructionSeconds.WithLabelValues(sequence).Observe(took.Seconds())
}
