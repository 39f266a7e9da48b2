package usecase

import (
	"testing"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

func TestSampleGenerator_Shape(t *testing.T) {
	policy := entity.DefaultPolicy()
	data := NewSampleGenerator(policy, 42).Generate()

	days := int(policy.WindowEnd.Sub(policy.WindowStart).Hours()/24) + 1
	if days != 152 {
		t.Fatalf("window days = %d, want 152", days)
	}
	if got, want := data.Table.Len(), days*len(SampleAccounts); got != want {
		t.Fatalf("rows = %d, want %d", got, want)
	}

	type key struct {
		day     time.Time
		account string
	}
	seen := make(map[key]int)
	services := make(map[string]bool)
	for _, s := range SampleServices {
		services[s] = true
	}

	for _, r := range data.Table.Records {
		seen[key{r.Date, r.Account}]++
		if c := r.Cost(entity.SampleCostColumn); c < 0 {
			t.Errorf("negative cost %v on %v", c, r.Date)
		}
		if !services[r.Service] {
			t.Errorf("unexpected service %q", r.Service)
		}
		if !policy.InWindow(r.Date) {
			t.Errorf("date %v outside window", r.Date)
		}
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("pair %v appears %d times", k, n)
		}
	}
	if len(seen) != days*len(SampleAccounts) {
		t.Errorf("distinct pairs = %d", len(seen))
	}
}

func TestSampleGenerator_Accounts(t *testing.T) {
	data := NewSampleGenerator(entity.DefaultPolicy(), 3).Generate()

	if !data.Outcome.Sample {
		t.Error("Outcome.Sample = false")
	}
	if len(data.Accounts) != len(SampleAccounts) {
		t.Fatalf("accounts = %d, want %d", len(data.Accounts), len(SampleAccounts))
	}

	var sum float64
	for i, a := range data.Accounts {
		if a.Account != SampleAccounts[i] {
			t.Errorf("account[%d] = %q, want %q", i, a.Account, SampleAccounts[i])
		}
		if a.Cost <= 0 {
			t.Errorf("account %s cost = %v", a.Account, a.Cost)
		}
		sum += a.Cost
	}
	if total := SumColumn(data.Table, entity.SampleCostColumn); !almostEqual(sum, total) {
		t.Errorf("account sum = %v, table total = %v", sum, total)
	}
}

func TestSampleGenerator_SameSeedSameData(t *testing.T) {
	policy := entity.DefaultPolicy()
	a := NewSampleGenerator(policy, 99).Generate()
	b := NewSampleGenerator(policy, 99).Generate()

	for i := range a.Table.Records {
		ra, rb := a.Table.Records[i], b.Table.Records[i]
		if ra.Cost(entity.SampleCostColumn) != rb.Cost(entity.SampleCostColumn) || ra.Service != rb.Service {
			t.Fatalf("row %d differs: %+v vs %+v", i, ra, rb)
		}
	}
}
