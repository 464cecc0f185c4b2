// Package server exposes the capability dispatcher as the public HTTP API.
package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/dispatch"
	"github.com/anibridge/anibridge/log"
	"github.com/gofiber/fiber/v2"
)

// handler binds the capability routes to one dispatcher instance.
type handler struct {
	dispatcher *dispatch.Dispatcher
}

func (h *handler) ping(c *fiber.Ctx) error {
	return c.JSON(h.dispatcher.Ping())
}

func (h *handler) recent(c *fiber.Ctx) error {
	page, err := pageOf(c)
	if err != nil {
		return badRequest(c, err)
	}

	items, _, err := h.dispatcher.Recent(page)
	if err != nil {
		return fail(c, "recent_failed", err)
	}
	return c.JSON(items)
}

func (h *handler) topAiring(c *fiber.Ctx) error {
	page, err := pageOf(c)
	if err != nil {
		return badRequest(c, err)
	}

	items, _, err := h.dispatcher.TopAiring(page)
	if err != nil {
		return fail(c, "top_airing_failed", err)
	}
	return c.JSON(items)
}

func (h *handler) genres(c *fiber.Ctx) error {
	genres, _, err := h.dispatcher.Genres()
	if err != nil {
		return fail(c, "genres_failed", err)
	}
	return c.JSON(genres)
}

func (h *handler) search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return badRequest(c, errors.New("missing required parameter q"))
	}

	results, provenance, err := h.dispatcher.Search(query)
	if err != nil {
		return fail(c, "search_failed", err)
	}
	return c.JSON(catalog.SearchResponse{Results: results, Provider: provenance})
}

func (h *handler) details(c *fiber.Ctx) error {
	details, _, err := h.dispatcher.Details(c.Params("id"))
	if err != nil {
		return fail(c, "details_failed", err)
	}
	return c.JSON(details)
}

func (h *handler) episodes(c *fiber.Ctx) error {
	episodes, _, err := h.dispatcher.Episodes(c.Params("id"))
	if err != nil {
		return fail(c, "episodes_failed", err)
	}
	return c.JSON(episodes)
}

func (h *handler) source(c *fiber.Ctx) error {
	episodeID := c.Query("episodeId")
	if episodeID == "" {
		return badRequest(c, errors.New("missing required parameter episodeId"))
	}

	source, _, err := h.dispatcher.Source(episodeID)
	if err != nil {
		return fail(c, "source_failed", err)
	}
	return c.JSON(source)
}

// pageOf reads the page query parameter, first page by default.
func pageOf(c *fiber.Ctx) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page %q", raw)
	}
	return page, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// fail renders the route's machine code as a server error. Only a transport
// failure reaches here; every other outcome was absorbed by the dispatcher.
func fail(c *fiber.Ctx, code string, err error) error {
	log.Errorf("%s: %v", code, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": code})
}
