package upcomingapi

import (
	"context"

	"github.com/proximaconf/proximacms/internal/app/system/reconcile"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

// payload is the typed patch for the upcoming events page.
type payload struct {
	Hero   *heroPatch   `json:"hero"`
	Events []eventPatch `json:"events"`
}

type heroPatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
}

// eventPatch merges element-wise against the stored event at the same
// index: absent fields keep their stored values, so clients can resend the
// list without re-supplying every field.
type eventPatch struct {
	Title     *string `json:"title"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	Image     *string `json:"image"`
	Website   *string `json:"website"`
}

func (p *payload) apply(doc *models.UpcomingPage) {
	if p.Hero != nil {
		reconcile.SetString(&doc.Hero.Title, p.Hero.Title)
		reconcile.SetString(&doc.Hero.Subtitle, p.Hero.Subtitle)
	}
	if p.Events != nil {
		events := make([]models.UpcomingEvent, len(p.Events))
		for i, ep := range p.Events {
			var ev models.UpcomingEvent
			if i < len(doc.Events) {
				ev = doc.Events[i]
			}
			reconcile.SetString(&ev.Title, ep.Title)
			reconcile.SetString(&ev.StartDate, ep.StartDate)
			reconcile.SetString(&ev.EndDate, ep.EndDate)
			reconcile.SetString(&ev.Country, ep.Country)
			reconcile.SetString(&ev.City, ep.City)
			reconcile.SetString(&ev.Image, ep.Image)
			reconcile.SetString(&ev.Website, ep.Website)
			events[i] = ev
		}
		doc.Events = events
	}
}

// applyFiles resolves upload slots: heroBg and eventImg{i}, both single
// replacements.
func applyFiles(ctx context.Context, up reconcile.Uploader, doc *models.UpcomingPage, files reconcile.Files) error {
	if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceUpcoming, files, "heroBg", &doc.Hero.BGImage); err != nil {
		return err
	}
	for i := range doc.Events {
		key := reconcile.IndexedSlot("eventImg", i)
		if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceUpcoming, files, key, &doc.Events[i].Image); err != nil {
			return err
		}
	}
	return nil
}

func collectPaths(doc *models.UpcomingPage) reconcile.PathSet {
	s := reconcile.NewPathSet(doc.Hero.BGImage)
	for _, ev := range doc.Events {
		s.Add(ev.Image)
	}
	return s
}
