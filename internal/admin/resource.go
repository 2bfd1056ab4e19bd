// internal/admin/resource.go
//
// Per-tab resource adapters.
//
// Context
// -------
// The dashboard is tab-generic: it moves content.Record values around and
// never looks inside them.  Each adapter binds one typed repository to
// the Resource contract: JSON decoding, the required-field check, and
// the CRUD pass-through.  Required fields are declared as validate tags
// on the entity structs; the validator reports them under their json
// names so the combined message matches what the UI shows.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/primenumber-jp/datasummit-site/internal/content"
	"github.com/primenumber-jp/datasummit-site/internal/content/download"
	"github.com/primenumber-jp/datasummit-site/internal/content/faq"
	"github.com/primenumber-jp/datasummit-site/internal/content/form"
)

// Tab identifies one dashboard tab.
type Tab string

const (
	TabDownloads Tab = "downloads"
	TabForms     Tab = "forms"
	TabFAQ       Tab = "faq"
)

// Resource is what the dashboard needs from one entity kind.
type Resource interface {
	Tab() Tab
	List(ctx context.Context) ([]content.Record, error)
	Get(ctx context.Context, id string) (content.Record, error)
	NewDraft() content.Record
	Decode(r io.Reader) (content.Record, error)
	Validate(rec content.Record) error
	Create(ctx context.Context, rec content.Record) (content.Record, error)
	Update(ctx context.Context, id string, rec content.Record) (content.Record, error)
	Delete(ctx context.Context, id string) error
}

//
// validator (shared by all adapters)
//

var check = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequired folds validator output into one ValidationError.
func checkRequired(rec any) error {
	err := check.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

//
// downloads
//

// DownloadResource adapts the downloads repository to the dashboard.
type DownloadResource struct {
	Repo *download.Repository
}

func (DownloadResource) Tab() Tab { return TabDownloads }

func (res DownloadResource) List(ctx context.Context) ([]content.Record, error) {
	items, err := res.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return downloadRecords(items), nil
}

func (res DownloadResource) Get(ctx context.Context, id string) (content.Record, error) {
	it, err := res.Repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *it, nil
}

// NewDraft pre-populates the blank edit modal with the entity defaults.
func (DownloadResource) NewDraft() content.Record {
	return download.Item{
		Category: download.CategoryGeneral,
		FileType: "PDF",
		FileSize: "1MB",
	}
}

func (DownloadResource) Decode(r io.Reader) (content.Record, error) {
	var it download.Item
	if err := json.NewDecoder(r).Decode(&it); err != nil {
		return nil, err
	}
	return it, nil
}

func (DownloadResource) Validate(rec content.Record) error {
	return checkRequired(rec.(download.Item))
}

func (res DownloadResource) Create(ctx context.Context, rec content.Record) (content.Record, error) {
	created, err := res.Repo.Create(ctx, rec.(download.Item))
	if err != nil {
		return nil, err
	}
	return *created, nil
}

func (res DownloadResource) Update(ctx context.Context, id string, rec content.Record) (content.Record, error) {
	updated, err := res.Repo.Update(ctx, id, rec.(download.Item))
	if err != nil {
		return nil, err
	}
	return *updated, nil
}

func (res DownloadResource) Delete(ctx context.Context, id string) error {
	return res.Repo.Delete(ctx, id)
}

func downloadRecords(items []download.Item) []content.Record {
	recs := make([]content.Record, len(items))
	for i, it := range items {
		recs[i] = it
	}
	return recs
}

//
// faq
//

// FAQResource adapts the FAQ repository to the dashboard.
type FAQResource struct {
	Repo *faq.Repository
}

func (FAQResource) Tab() Tab { return TabFAQ }

func (res FAQResource) List(ctx context.Context) ([]content.Record, error) {
	items, err := res.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return faqRecords(items), nil
}

func (res FAQResource) Get(ctx context.Context, id string) (content.Record, error) {
	it, err := res.Repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *it, nil
}

func (FAQResource) NewDraft() content.Record {
	return faq.Item{
		Category: faq.CategoryGeneral,
		Priority: faq.DefaultPriority,
	}
}

func (FAQResource) Decode(r io.Reader) (content.Record, error) {
	var it faq.Item
	if err := json.NewDecoder(r).Decode(&it); err != nil {
		return nil, err
	}
	return it, nil
}

func (FAQResource) Validate(rec content.Record) error {
	return checkRequired(rec.(faq.Item))
}

func (res FAQResource) Create(ctx context.Context, rec content.Record) (content.Record, error) {
	created, err := res.Repo.Create(ctx, rec.(faq.Item))
	if err != nil {
		return nil, err
	}
	return *created, nil
}

func (res FAQResource) Update(ctx context.Context, id string, rec content.Record) (content.Record, error) {
	updated, err := res.Repo.Update(ctx, id, rec.(faq.Item))
	if err != nil {
		return nil, err
	}
	return *updated, nil
}

func (res FAQResource) Delete(ctx context.Context, id string) error {
	return res.Repo.Delete(ctx, id)
}

func faqRecords(items []faq.Item) []content.Record {
	recs := make([]content.Record, len(items))
	for i, it := range items {
		recs[i] = it
	}
	return recs
}

//
// forms
//

// FormResource adapts the forms repository to the dashboard.
type FormResource struct {
	Repo *form.Repository
}

func (FormResource) Tab() Tab { return TabForms }

func (res FormResource) List(ctx context.Context) ([]content.Record, error) {
	items, err := res.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return formRecords(items), nil
}

func (res FormResource) Get(ctx context.Context, id string) (content.Record, error) {
	it, err := res.Repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *it, nil
}

func (FormResource) NewDraft() content.Record {
	return form.Item{
		Category:   "sponsor",
		IsRequired: true,
	}
}

func (FormResource) Decode(r io.Reader) (content.Record, error) {
	var it form.Item
	if err := json.NewDecoder(r).Decode(&it); err != nil {
		return nil, err
	}
	return it, nil
}

func (FormResource) Validate(rec content.Record) error {
	return checkRequired(rec.(form.Item))
}

func (res FormResource) Create(ctx context.Context, rec content.Record) (content.Record, error) {
	created, err := res.Repo.Create(ctx, rec.(form.Item))
	if err != nil {
		return nil, err
	}
	return *created, nil
}

func (res FormResource) Update(ctx context.Context, id string, rec content.Record) (content.Record, error) {
	updated, err := res.Repo.Update(ctx, id, rec.(form.Item))
	if err != nil {
		return nil, err
	}
	return *updated, nil
}

func (res FormResource) Delete(ctx context.Context, id string) error {
	return res.Repo.Delete(ctx, id)
}

func formRecords(items []form.Item) []content.Record {
	recs := make([]content.Record, len(items))
	for i, it := range items {
		recs[i] = it
	}
	return recs
}
