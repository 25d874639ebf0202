package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// isMultipart reports whether the request carries a multipart form
func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

// receiveFile returns the bytes of an optional single file field
func receiveFile(c *fiber.Ctx, field string) ([]byte, error) {
	files, err := receiveFiles(c, field, 1)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return files[0], nil
}

// receiveFiles returns the bytes of up to max files sent under field.
// A request without the field yields an empty list.
func receiveFiles(c *fiber.Ctx, field string, max int) ([][]byte, error) {
	out := [][]byte{}
	if !isMultipart(c) {
		return out, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed multipart body", domain.ErrInvalidInput)
	}

	headers := form.File[field]
	if len(headers) > max {
		return nil, fmt.Errorf("%w: at most %d files in %s", domain.ErrInvalidInput, max, field)
	}

	for _, fh := range headers {
		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// paramID parses a positive integer route parameter
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, name)
	}
	return uint(id), nil
}
