package editor

import (
	"fmt"
	"time"

	"portfolio-be/internal/entity"
)

// DisplayDateLayout renders the creation date the way the writing list shows it.
const DisplayDateLayout = "1/2/2006"

// Kind describes one record type to the workflow.
type Kind[T any] interface {
	Name() string
	New(id string, now time.Time) T
	ID(record T) string
	Clone(record T) T
	SetField(record *T, field, value string) error
}

type PostKind struct{}

func (PostKind) Name() string { return "post" }

func (PostKind) New(id string, now time.Time) entity.Post {
	return entity.Post{
		Id:       id,
		Title:    "New Post",
		Excerpt:  "",
		Content:  "",
		Date:     now.Format(DisplayDateLayout),
		ReadTime: "5 min read",
		Tags:     []string{},
	}
}

func (PostKind) ID(p entity.Post) string { return p.Id }

func (PostKind) Clone(p entity.Post) entity.Post { return p.Clone() }

func (PostKind) SetField(p *entity.Post, field, value string) error {
	switch field {
	case "title":
		p.Title = value
	case "excerpt":
		p.Excerpt = value
	case "content":
		p.Content = value
	case "date":
		p.Date = value
	case "readTime":
		p.ReadTime = value
	case "tags":
		p.Tags = ParseTags(value)
	default:
		return fmt.Errorf("%w: post has no field %q", ErrUnknownField, field)
	}
	return nil
}

type ExperienceKind struct{}

func (ExperienceKind) Name() string { return "experience" }

func (ExperienceKind) New(id string, _ time.Time) entity.ExperienceEntry {
	return entity.ExperienceEntry{
		Id:    id,
		Title: "New Position",
		Type:  entity.ExperienceTypeWork,
	}
}

func (ExperienceKind) ID(e entity.ExperienceEntry) string { return e.Id }

func (ExperienceKind) Clone(e entity.ExperienceEntry) entity.ExperienceEntry { return e }

func (ExperienceKind) SetField(e *entity.ExperienceEntry, field, value string) error {
	switch field {
	case "title":
		e.Title = value
	case "organization":
		e.Organization = value
	case "location":
		e.Location = value
	case "period":
		e.Period = value
	case "description":
		e.Description = value
	case "type":
		t, err := entity.ParseExperienceType(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
		e.Type = t
	default:
		return fmt.Errorf("%w: experience has no field %q", ErrUnknownField, field)
	}
	return nil
}
