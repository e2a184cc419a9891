package controller

import (
	"portfolio-be/internal/dto"
	"portfolio-be/internal/editor"
	"portfolio-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ICollectionController interface {
	RegisterRoutes(r fiber.Router)
}

// collectionController exposes one editing workflow. Posts and experience
// entries each get their own instance.
type collectionController[T any] struct {
	path   string
	editor editor.Editor[T]
	notice SaveNotice
}

// SaveNotice reports the transient message raised by the last save.
type SaveNotice interface {
	Acknowledgment() string
}

func NewCollectionController[T any](path string, ed editor.Editor[T], notice SaveNotice) ICollectionController {
	return &collectionController[T]{path: path, editor: ed, notice: notice}
}

func (c *collectionController[T]) RegisterRoutes(r fiber.Router) {
	h := r.Group(c.path)
	h.Get("/", c.List)
	h.Get("/draft", c.GetDraft)
	h.Post("/draft", c.StartCreate)
	h.Patch("/draft", c.UpdateDraftField)
	h.Post("/draft/save", c.Save)
	h.Delete("/draft", c.Cancel)
	h.Post("/:id/edit", c.StartEdit)
	h.Delete("/:id", c.Delete)
}

func (c *collectionController[T]) draftResponse() dto.DraftResponse[T] {
	res := dto.DraftResponse[T]{State: c.editor.State().String()}
	if draft, ok := c.editor.Draft(); ok {
		res.Draft = &draft
	}
	return res
}

func (c *collectionController[T]) List(ctx *fiber.Ctx) error {
	items, err := c.editor.List(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	draft := c.draftResponse()
	return ctx.JSON(serverutils.SuccessResponse("Loaded "+c.editor.Kind().Name()+" collection", dto.CollectionResponse[T]{
		Items: items,
		State: draft.State,
		Draft: draft.Draft,
	}))
}

func (c *collectionController[T]) GetDraft(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Current draft", c.draftResponse()))
}

func (c *collectionController[T]) StartCreate(ctx *fiber.Ctx) error {
	if _, err := c.editor.StartCreate(ctx.UserContext()); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Draft started", c.draftResponse()))
}

func (c *collectionController[T]) StartEdit(ctx *fiber.Ctx) error {
	if _, err := c.editor.StartEdit(ctx.UserContext(), ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Editing", c.draftResponse()))
}

func (c *collectionController[T]) UpdateDraftField(ctx *fiber.Ctx) error {
	var req dto.UpdateDraftFieldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if _, err := c.editor.UpdateDraftField(req.Field, req.Value); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Draft updated", c.draftResponse()))
}

func (c *collectionController[T]) Save(ctx *fiber.Ctx) error {
	record, err := c.editor.Save(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Saved "+c.editor.Kind().Name(), dto.SaveResponse[T]{
		Record:         record,
		Acknowledgment: c.notice.Acknowledgment(),
	}))
}

func (c *collectionController[T]) Cancel(ctx *fiber.Ctx) error {
	c.editor.Cancel()
	return ctx.JSON(serverutils.SuccessResponse("Draft discarded", c.draftResponse()))
}

func (c *collectionController[T]) Delete(ctx *fiber.Ctx) error {
	confirmed := ctx.QueryBool("confirm", false)
	if err := c.editor.Delete(ctx.UserContext(), ctx.Params("id"), confirmed); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Deleted "+c.editor.Kind().Name(), nil))
}
