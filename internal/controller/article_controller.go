package controller

import (
	"blog-content-be/internal/dto"
	"blog-content-be/internal/pkg/serverutils"
	"blog-content-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IArticleController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Publish(ctx *fiber.Ctx) error
	Unpublish(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Rendered(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
}

type articleController struct {
	articleService service.IArticleService
}

func NewArticleController(articleService service.IArticleService) IArticleController {
	return &articleController{
		articleService: articleService,
	}
}

func (c *articleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/article/v1")

	// Public reading surface
	h.Get("", c.List)
	h.Get(":slug/rendered", c.Rendered)

	// Authoring surface
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Post("preview", serverutils.JwtMiddleware, c.Preview)
	h.Get("id/:id", serverutils.JwtMiddleware, c.Show)
	h.Put("id/:id", serverutils.JwtMiddleware, c.Update)
	h.Post("id/:id/publish", serverutils.JwtMiddleware, c.Publish)
	h.Post("id/:id/unpublish", serverutils.JwtMiddleware, c.Unpublish)
	h.Delete("id/:id", serverutils.JwtMiddleware, c.Delete)
}

func (c *articleController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create article", res))
}

func (c *articleController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.articleService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show article", res))
}

func (c *articleController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update article", res))
}

func (c *articleController) Publish(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.articleService.Publish(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success publish article", res))
}

func (c *articleController) Unpublish(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.articleService.Unpublish(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unpublish article", res))
}

func (c *articleController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.articleService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete article", nil))
}

func (c *articleController) List(ctx *fiber.Ctx) error {
	var req dto.ListArticlesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.articleService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list articles", res))
}

func (c *articleController) Rendered(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	res, err := c.articleService.Rendered(ctx.Context(), slug)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render article", res))
}

func (c *articleController) Preview(ctx *fiber.Ctx) error {
	var req dto.PreviewArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.Preview(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success preview article", res))
}
