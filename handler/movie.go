package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"cinema_booking/catalog"
	"cinema_booking/model"
	"cinema_booking/utils"
)

func (h *Handler) GetMovies(c *fiber.Ctx) error {
	var filter model.FilterMovieInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bộ lọc không hợp lệ", err)
	}

	movies := h.Catalog.Movies(filter)
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       movies,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: int64(len(movies)),
	})
}

func (h *Handler) GetMovieBySlug(c *fiber.Ctx) error {
	movieSlug := c.Params("slug")

	movie, err := h.Catalog.MovieBySlug(movieSlug)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phim", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// UpdateMovie admin sửa metadata phim; copier chỉ chép các trường khác nil
func (h *Handler) UpdateMovie(c *fiber.Ctx) error {
	movieId, _ := c.Locals("inputMovieId").(uint)
	input, _ := c.Locals("inputUpdateMovie").(model.UpdateMovieInput)

	movie, err := h.Catalog.ApplyMovieUpdate(movieId, func(m *model.Movie) {
		copier.CopyWithOption(m, &input, copier.Option{IgnoreEmpty: true})
	})
	if errors.Is(err, catalog.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phim", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}
