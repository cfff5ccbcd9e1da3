package servicesapi

import (
	"context"

	"github.com/proximaconf/proximacms/internal/app/system/reconcile"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

// payload is the typed patch for the services page.
type payload struct {
	Hero     *heroPatch           `json:"hero"`
	Services []models.ServiceItem `json:"services"`
}

type heroPatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
}

func (p *payload) apply(doc *models.ServicePage) {
	if p.Hero != nil {
		reconcile.SetString(&doc.Hero.Title, p.Hero.Title)
		reconcile.SetString(&doc.Hero.Subtitle, p.Hero.Subtitle)
	}
	if p.Services != nil {
		// Points must never be null in the stored document.
		for i := range p.Services {
			if p.Services[i].Points == nil {
				p.Services[i].Points = []string{}
			}
		}
		doc.Services = p.Services
	}
}

// applyFiles resolves upload slots: heroBg and serviceImgs{i}.
func applyFiles(ctx context.Context, up reconcile.Uploader, doc *models.ServicePage, files reconcile.Files) error {
	if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceServices, files, "heroBg", &doc.Hero.BGImage); err != nil {
		return err
	}
	for i := range doc.Services {
		key := reconcile.IndexedSlot("serviceImgs", i)
		if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceServices, files, key, &doc.Services[i].Image); err != nil {
			return err
		}
	}
	return nil
}

func collectPaths(doc *models.ServicePage) reconcile.PathSet {
	s := reconcile.NewPathSet(doc.Hero.BGImage)
	for _, svc := range doc.Services {
		s.Add(svc.Image)
	}
	return s
}
