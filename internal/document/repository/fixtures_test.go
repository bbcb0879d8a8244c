package repository

import (
	"time"

	"github.com/dmdev/docmanager/internal/document"
)

const (
	kotsiubynskyID = "97b56df5-1169-42b7-9da3-6a65ae8258c4"
	lovecraftID    = "46360406-445d-467b-a26e-486ceac3f4e2"
	herbertID      = "a057efb3-40be-4d43-a174-fdb720679647"
)

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// books returns fresh copies of the seed documents on every call.
func books() (shadows, intermezzo, shadowOutOfTime, dune *document.Document) {
	kotsiubynsky := document.Author{ID: kotsiubynskyID, Name: "Михайло Коцюбинський"}
	shadows = &document.Document{
		ID:      "61ee816f-b321-4e04-b35f-79a38dd37426",
		Title:   "Тіні забутих предків",
		Content: "Іван був дев'ятнадцятою дитиною в гуцульській родині Палійчуків.",
		Author:  kotsiubynsky,
		Created: date(1912, time.January),
	}
	intermezzo = &document.Document{
		ID:      "6d0265183-fb24-4cfe-b55a-fcfc26ff351f",
		Title:   "Intermezzo",
		Content: "Лишилось тільки ще спакуватись... Се було одно з тих незчисленних \"треба\", які мене так утомили і не давали спати.",
		Author:  kotsiubynsky,
		Created: date(1908, time.January),
	}
	shadowOutOfTime = &document.Document{
		ID:      "aa614e44-0ccb-4c27-a8da-6417e5b8dfc4",
		Title:   "The Shadow Out of Time",
		Content: "After twenty-two years of nightmare and terror, saved only by a desperate conviction of the mythical source of certain impressions, I am unwilling to vouch for the truth of that which I think I found in Western Australia on the night of July 17–18, 1935.",
		Author:  document.Author{ID: lovecraftID, Name: "Howard Phillips Lovecraft"},
		Created: date(1936, time.June),
	}
	dune = &document.Document{
		ID:      "31db7354-c2a9-4a2d-966b-62913839482e",
		Title:   "Dune",
		Content: "In the week before their departure to Arrakis, when all the final scurrying about had reached a nearly unbearable frenzy, an old crone came to visit a mother of the boy, Paul.",
		Author:  document.Author{ID: herbertID, Name: "Frank Herbert"},
		Created: date(1965, time.August),
	}
	return
}

func seededRepo(opts ...Option) *MemoryRepo {
	b1, b2, b3, b4 := books()
	return NewMemoryRepoFrom(map[string]*document.Document{
		b1.ID: b1, b2.ID: b2, b3.ID: b3, b4.ID: b4,
	}, opts...)
}

func ids(docs []*document.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}
