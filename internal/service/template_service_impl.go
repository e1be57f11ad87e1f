package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/editor"
	"github.com/alexanderramin/gymtrack/internal/units"
)

type templateService struct {
	repos Repos
	uow   db.UnitOfWork
	options
}

func NewTemplateService(repos Repos, uow db.UnitOfWork, opts ...Option) TemplateService {
	return &templateService{repos: repos, uow: uow, options: buildOptions(opts)}
}

func (s *templateService) List(ctx context.Context) ([]domain.Template, error) {
	return loadTemplates(ctx, s.logger, s.repos)
}

func (s *templateService) Get(ctx context.Context, id int64) (*domain.Template, error) {
	templates, err := loadTemplates(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	t, ok := editor.FindTemplate(templates, id)
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrTemplateNotFound)
	}
	return &t, nil
}

func (s *templateService) Create(ctx context.Context, name string, edit func(*editor.TemplateDraft) error) (out *domain.Template, saved bool, err error) {
	done := s.track(ctx, "create-template", map[string]any{"name": name})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		settings, err := loadSettings(ctx, s.logger, r)
		if err != nil {
			return err
		}
		templates, err := loadTemplates(ctx, s.logger, r)
		if err != nil {
			return err
		}

		draft := editor.NewTemplate(units.New(settings.UnitSystem))
		draft.Name = name
		if edit != nil {
			if err := edit(draft); err != nil {
				return err
			}
		}
		now := s.now()
		t, ok := draft.Build(domain.NextID(now, editor.TemplateIDTaken(templates)), now)
		if !ok {
			return nil
		}
		if err := r.Templates.SaveAll(ctx, editor.UpsertTemplate(templates, t)); err != nil {
			return err
		}
		out, saved = &t, true
		return nil
	})
	return out, saved, err
}

func (s *templateService) Edit(ctx context.Context, id int64, edit func(*editor.TemplateDraft) error) (out *domain.Template, err error) {
	done := s.track(ctx, "edit-template", map[string]any{"template_id": id})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		settings, err := loadSettings(ctx, s.logger, r)
		if err != nil {
			return err
		}
		templates, err := loadTemplates(ctx, s.logger, r)
		if err != nil {
			return err
		}
		current, ok := editor.FindTemplate(templates, id)
		if !ok {
			return fmt.Errorf("template %d: %w", id, domain.ErrTemplateNotFound)
		}

		draft := editor.EditTemplate(current, units.New(settings.UnitSystem))
		if err := edit(draft); err != nil {
			return err
		}
		t, ok := draft.Build(id, current.CreatedAt)
		if !ok {
			// A blanked name leaves the stored template unchanged.
			out = &current
			return nil
		}
		if err := r.Templates.SaveAll(ctx, editor.UpsertTemplate(templates, t)); err != nil {
			return err
		}
		out = &t
		return nil
	})
	return out, err
}

func (s *templateService) Delete(ctx context.Context, id int64) (err error) {
	done := s.track(ctx, "delete-template", map[string]any{"template_id": id})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		templates, err := loadTemplates(ctx, s.logger, r)
		if err != nil {
			return err
		}
		rest, ok := editor.RemoveTemplate(templates, id)
		if !ok {
			return fmt.Errorf("template %d: %w", id, domain.ErrTemplateNotFound)
		}
		return r.Templates.SaveAll(ctx, rest)
	})
}
