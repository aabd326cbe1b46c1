package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		return c.Next()
	}
}

func SelectShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SelectShowtimeInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputSelectShowtime", input)
		return c.Next()
	}
}

func AddSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddSeatInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputAddSeat", input)
		return c.Next()
	}
}

func AddConcession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddConcessionInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if input.Quantity < 1 {
			input.Quantity = 1
		}

		c.Locals("inputAddConcession", input)
		return c.Next()
	}
}

func UpdateConcession(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		itemId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateConcessionInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		c.Locals("inputUpdateConcession", input)
		c.Locals("inputItemId", uint(itemId))
		return c.Next()
	}
}

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCheckout", input)
		return c.Next()
	}
}

func UpdateBookingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateBookingStatusInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputBookingStatus", input)
		return c.Next()
	}
}

func UpdateMovie(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		movieId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateMovieInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputUpdateMovie", input)
		c.Locals("inputMovieId", uint(movieId))
		return c.Next()
	}
}

func FilterBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterBookingInput

		if err := c.QueryParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputFilterBooking", input)
		return c.Next()
	}
}
