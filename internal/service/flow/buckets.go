package flow

import (
	"sort"
	"time"

	"mes-analytics/internal/storage"
)

// BucketItem — заказ внутри корзины вместе с возрастом блокировки.
type BucketItem struct {
	Order        *storage.WorkOrderSnapshot `json:"order"`
	ElapsedHours int                        `json:"elapsed_hours"`
	Severity     Severity                   `json:"severity"`
}

type Buckets struct {
	Items map[Category][]BucketItem
	// Flowing — заказы без блокировки, в корзины не попадают.
	Flowing int
	// BadTimestamps — записи с нечитаемой датой создания, для лога.
	BadTimestamps int
}

// BuildBuckets раскладывает заказы по корзинам блокировок. Каждый заказ
// попадает не более чем в одну корзину: сумма размеров корзин плюс Flowing
// всегда равна числу входных заказов.
func BuildBuckets(orders []*storage.WorkOrderSnapshot, now time.Time) Buckets {
	res := Buckets{Items: make(map[Category][]BucketItem)}

	for _, wo := range orders {
		cat := Classify(wo)
		if cat == CategoryNone {
			res.Flowing++
			continue
		}

		hours, err := ElapsedHours(wo.CreatedAt, now)
		if err != nil {
			res.BadTimestamps++
		}

		res.Items[cat] = append(res.Items[cat], BucketItem{
			Order:        wo,
			ElapsedHours: hours,
			Severity:     SeverityFor(hours),
		})
	}

	// Внутри корзины самые старые блокировки сверху; при равном возрасте
	// сохраняем порядок выборки.
	for cat := range res.Items {
		items := res.Items[cat]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ElapsedHours > items[j].ElapsedHours
		})
	}

	return res
}

func (b Buckets) Counts() map[Category]int {
	counts := make(map[Category]int, len(b.Items))
	for cat, items := range b.Items {
		counts[cat] = len(items)
	}
	return counts
}

func (b Buckets) TotalBlocked() int {
	total := 0
	for _, items := range b.Items {
		total += len(items)
	}
	return total
}

// SeverelyAged — число заблокированных заказов с возрастом high.
func (b Buckets) SeverelyAged() int {
	count := 0
	for _, items := range b.Items {
		for _, item := range items {
			if item.Severity == SeverityHigh {
				count++
			}
		}
	}
	return count
}
