package homeapi

import (
	"context"

	"github.com/proximaconf/proximacms/internal/app/system/reconcile"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

// payload is the typed patch for the home page. Decoding into it is the
// sanitizer: unknown fields are dropped, and a declared field that fails to
// decode rejects the whole request.
type payload struct {
	Hero         *heroPatch               `json:"hero"`
	Welcome      *welcomePatch            `json:"welcome"`
	Stats        []models.Stat            `json:"stats"`
	About        []models.AboutBlock      `json:"about"`
	Conferences  []models.ConferenceCard  `json:"conferences"`
	Sustainable  *sustainablePatch        `json:"sustainableConferences"`
	Testimonials []models.Testimonial     `json:"testimonials"`
}

type heroPatch struct {
	Heading    *string `json:"heading"`
	Subheading *string `json:"subheading"`
	ButtonText *string `json:"buttonText"`
}

type welcomePatch struct {
	Heading *string              `json:"heading"`
	Content *string              `json:"content"`
	Cards   []models.WelcomeCard `json:"cards"`
}

type sustainablePatch struct {
	Content  *string `json:"content"`
	ImageAlt *string `json:"imageAlt"`
}

// apply merges the patch into doc. Absent scalars retain stored values;
// present arrays replace wholesale. File-reference fields inside arrays
// arrive as part of the array elements and are resolved afterwards by
// applyFiles.
func (p *payload) apply(doc *models.HomePage) {
	if p.Hero != nil {
		reconcile.SetString(&doc.Hero.Heading, p.Hero.Heading)
		reconcile.SetString(&doc.Hero.Subheading, p.Hero.Subheading)
		reconcile.SetString(&doc.Hero.ButtonText, p.Hero.ButtonText)
	}
	if p.Welcome != nil {
		reconcile.SetString(&doc.Welcome.Heading, p.Welcome.Heading)
		reconcile.SetString(&doc.Welcome.Content, p.Welcome.Content)
		if p.Welcome.Cards != nil {
			doc.Welcome.Cards = p.Welcome.Cards
		}
	}
	if p.Stats != nil {
		doc.Stats = p.Stats
	}
	if p.About != nil {
		doc.About = p.About
	}
	if p.Conferences != nil {
		doc.Conferences = p.Conferences
	}
	if p.Sustainable != nil {
		reconcile.SetString(&doc.Sustainable.Content, p.Sustainable.Content)
		reconcile.SetString(&doc.Sustainable.ImageAlt, p.Sustainable.ImageAlt)
	}
	if p.Testimonials != nil {
		doc.Testimonials = p.Testimonials
	}
}

// applyFiles resolves upload slots against the merged document.
//
// Slots:
//   - heroImages           whole-carousel replacement (previous owned slides deleted)
//   - welcomeCardImgs{i}   per-card replacement
//   - aboutImgs{i}         per-block replacement
//   - conferenceImgs{i}    per-card replacement
//   - sustainImage         single replacement
//   - testimonialPhotos{i} per-testimonial replacement
func applyFiles(ctx context.Context, up reconcile.Uploader, doc *models.HomePage, files reconcile.Files) error {
	if fhs := files.All("heroImages"); len(fhs) > 0 {
		for _, img := range doc.Hero.Images {
			if img.Src != "" && up.Owns(img.Src) {
				up.BestEffortDelete(ctx, img.Src)
			}
		}
		imgs := make([]models.HeroImage, 0, len(fhs))
		for _, fh := range fhs {
			path, err := up.Save(ctx, fh, models.NamespaceHome)
			if err != nil {
				return err
			}
			alt := fh.Filename
			if alt == "" {
				alt = "Hero image"
			}
			imgs = append(imgs, models.HeroImage{Src: path, Alt: alt})
		}
		doc.Hero.Images = imgs
	}

	for i := range doc.Welcome.Cards {
		key := reconcile.IndexedSlot("welcomeCardImgs", i)
		if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceHome, files, key, &doc.Welcome.Cards[i].Image); err != nil {
			return err
		}
	}
	for i := range doc.About {
		key := reconcile.IndexedSlot("aboutImgs", i)
		if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceHome, files, key, &doc.About[i].Image); err != nil {
			return err
		}
	}
	for i := range doc.Conferences {
		key := reconcile.IndexedSlot("conferenceImgs", i)
		if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceHome, files, key, &doc.Conferences[i].Img); err != nil {
			return err
		}
	}
	if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceHome, files, "sustainImage", &doc.Sustainable.Image); err != nil {
		return err
	}
	for i := range doc.Testimonials {
		key := reconcile.IndexedSlot("testimonialPhotos", i)
		if err := reconcile.ReplaceSingle(ctx, up, models.NamespaceHome, files, key, &doc.Testimonials[i].Photo); err != nil {
			return err
		}
	}
	return nil
}

// collectPaths gathers every file-reference path on the document.
func collectPaths(doc *models.HomePage) reconcile.PathSet {
	s := reconcile.PathSet{}
	for _, img := range doc.Hero.Images {
		s.Add(img.Src)
	}
	for _, c := range doc.Welcome.Cards {
		s.Add(c.Image)
	}
	for _, b := range doc.About {
		s.Add(b.Image)
	}
	for _, c := range doc.Conferences {
		s.Add(c.Img)
	}
	s.Add(doc.Sustainable.Image)
	for _, t := range doc.Testimonials {
		s.Add(t.Photo)
	}
	return s
}
