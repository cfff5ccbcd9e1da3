package galleryapi

import (
	"context"

	"github.com/proximaconf/proximacms/internal/app/system/reconcile"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

// payload is the typed patch for the gallery page.
type payload struct {
	Hero  *heroPatch         `json:"hero"`
	Years []models.YearBlock `json:"years"`
}

type heroPatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
}

func (p *payload) apply(doc *models.GalleryPage) {
	if p.Hero != nil {
		reconcile.SetString(&doc.Hero.Title, p.Hero.Title)
		reconcile.SetString(&doc.Hero.Subtitle, p.Hero.Subtitle)
	}
	if p.Years != nil {
		doc.Years = normalizeYears(p.Years)
	}
}

// normalizeYears fills in defaults and strips empty image entries. A year
// block without a year lands in the current year.
func normalizeYears(years []models.YearBlock) []models.YearBlock {
	out := make([]models.YearBlock, len(years))
	for i, y := range years {
		if y.Year == 0 {
			y.Year = models.FlexInt(models.CurrentYear())
		}
		events := make([]models.GalleryEvent, len(y.Events))
		for j, e := range y.Events {
			imgs := make([]string, 0, len(e.Images))
			for _, img := range e.Images {
				if img != "" {
					imgs = append(imgs, img)
				}
			}
			e.Images = imgs
			events[j] = e
		}
		y.Events = events
		out[i] = y
	}
	return out
}

// applyFiles resolves upload slots. The hero background is a single
// replacement; event slots ("eventImgs{y}_{e}") append to the addressed
// event's image list. Removed images are reclaimed by the caller's
// before/after orphan diff, not here.
func applyFiles(ctx context.Context, up reconcile.Uploader, doc *models.GalleryPage, files reconcile.Files) error {
	if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceGallery, files, "heroBg", &doc.Hero.BGImage); err != nil {
		return err
	}
	for yi := range doc.Years {
		for ei := range doc.Years[yi].Events {
			key := reconcile.NestedSlot("eventImgs", yi, ei)
			if err := reconcile.AppendAll(ctx, up, models.NamespaceGallery, files, key, &doc.Years[yi].Events[ei].Images); err != nil {
				return err
			}
		}
	}
	return nil
}

func collectPaths(doc *models.GalleryPage) reconcile.PathSet {
	s := reconcile.NewPathSet(doc.Hero.BGImage)
	for _, y := range doc.Years {
		for _, e := range y.Events {
			s.Add(e.Images...)
		}
	}
	return s
}
