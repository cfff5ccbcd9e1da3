package aboutapi

import (
	"context"

	"github.com/proximaconf/proximacms/internal/app/system/reconcile"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

// payload is the typed patch for the about page.
type payload struct {
	Hero     *heroPatch              `json:"hero"`
	Sections []models.ContentSection `json:"contentSections"`
	Counters []models.Counter        `json:"counters"`
	Approach []models.ApproachItem   `json:"approach"`
}

type heroPatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
}

func (p *payload) apply(doc *models.AboutPage) {
	if p.Hero != nil {
		reconcile.SetString(&doc.Hero.Title, p.Hero.Title)
		reconcile.SetString(&doc.Hero.Subtitle, p.Hero.Subtitle)
	}
	if p.Sections != nil {
		doc.Sections = p.Sections
	}
	if p.Counters != nil {
		doc.Counters = p.Counters
	}
	if p.Approach != nil {
		doc.Approach = p.Approach
	}
}

// applyFiles resolves upload slots: heroBg and sectionImgs{i}.
func applyFiles(ctx context.Context, up reconcile.Uploader, doc *models.AboutPage, files reconcile.Files) error {
	if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceAbout, files, "heroBg", &doc.Hero.BGImage); err != nil {
		return err
	}
	for i := range doc.Sections {
		key := reconcile.IndexedSlot("sectionImgs", i)
		if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceAbout, files, key, &doc.Sections[i].Image); err != nil {
			return err
		}
	}
	return nil
}

func collectPaths(doc *models.AboutPage) reconcile.PathSet {
	s := reconcile.NewPathSet(doc.Hero.BGImage)
	for _, sec := range doc.Sections {
		s.Add(sec.Image)
	}
	return s
}
