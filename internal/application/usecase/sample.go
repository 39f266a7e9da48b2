package usecase

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

var (
	// SampleAccounts são as contas usadas nos dados de demonstração.
	SampleAccounts = []string{"Account-A", "Account-B", "Account-C", "Account-D", "Account-E"}
	// SampleServices são as tags de serviço sorteadas para cada linha.
	SampleServices = []string{"EC2", "S3", "Lambda", "RDS", "CloudWatch"}
)

const (
	sampleBaseMin  = 50.0
	sampleBaseMax  = 200.0
	sampleNoiseStd = 20.0
)

// SampleGenerator fabricates a plausible cost table for demonstration.
// Not safe for concurrent use.
type SampleGenerator struct {
	rng    *rand.Rand
	policy entity.AnalysisPolicy
}

// NewSampleGenerator creates a generator. A zero seed uses the current time.
func NewSampleGenerator(policy entity.AnalysisPolicy, seed int64) *SampleGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SampleGenerator{
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		policy: policy,
	}
}

// Generate produz uma linha por (dia, conta) dentro da janela, com custo
// uniforme em [50,200) mais ruído normal (σ=20), nunca negativo.
func (g *SampleGenerator) Generate() entity.DashboardData {
	var records []entity.CostRecord
	for day := g.policy.WindowStart; !day.After(g.policy.WindowEnd); day = day.AddDate(0, 0, 1) {
		for _, account := range SampleAccounts {
			base := sampleBaseMin + g.rng.Float64()*(sampleBaseMax-sampleBaseMin)
			cost := math.Max(0, base+g.rng.NormFloat64()*sampleNoiseStd)
			records = append(records, entity.CostRecord{
				Date:    day,
				Account: account,
				Service: SampleServices[g.rng.IntN(len(SampleServices))],
				Costs:   map[string]float64{entity.SampleCostColumn: cost},
			})
		}
	}

	table := entity.CostTable{Records: records, HasAccountColumn: true}

	accounts := AggregateAccounts(table, entity.SampleCostColumn, g.policy)

	return entity.DashboardData{
		Table:       table,
		CostColumns: []string{entity.SampleCostColumn},
		Accounts:    accounts,
		Outcome: entity.LoadOutcome{
			Sample:   true,
			RowsRead: len(records),
			RowsKept: len(records),
		},
	}
}
