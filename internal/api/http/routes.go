package httpapi

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lmoreno/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. Mapping the
// error taxonomy to status codes happens only here: ValidationError -> 422,
// FetchError -> 502, StorageError -> 500, ErrNotFound -> 404.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	w := app.Group("/weather")

	w.Get("/history", func(c *fiber.Ctx) error {
		return historyHandler(c, service, "")
	})

	w.Get("/history/:city", func(c *fiber.Ctx) error {
		return historyHandler(c, service, c.Params("city"))
	})

	w.Post("/save/:city", func(c *fiber.Ctx) error {
		city := c.Params("city")
		if err := service.Ingest(c.UserContext(), city, nil); err != nil {
			return mapError(err)
		}
		return c.JSON(fiber.Map{
			"message": "Weather for " + city + " saved successfully.",
		})
	})

	w.Get("/latest/:city", func(c *fiber.Ctx) error {
		rec, err := service.Latest(c.UserContext(), c.Params("city"))
		if err != nil {
			// The live fallback already ran; a fetch failure here means
			// neither the store nor the provider had data.
			var fetchErr *weather.FetchError
			if errors.As(err, &fetchErr) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data available for "+c.Params("city"))
			}
			return mapError(err)
		}
		return c.JSON(rec)
	})

	w.Get("/daily-summary/:city", func(c *fiber.Ctx) error {
		summary, err := service.DailySummary(c.Params("city"), time.Now().UTC())
		if err != nil {
			return mapError(err)
		}
		return c.JSON(summary)
	})

	w.Get("/forecast/:city", func(c *fiber.Ctx) error {
		entries, err := service.Forecast(c.UserContext(), c.Params("city"))
		if err != nil {
			return mapError(err)
		}
		return c.JSON(entries)
	})

	w.Get("/reverse-geocode", func(c *fiber.Ctx) error {
		q, err := parseGeoQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		city, err := service.ReverseGeocode(c.UserContext(), q.Lat, q.Lon)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(fiber.Map{"city": city})
	})

	// Registered last so it does not shadow the routes above.
	w.Get("/:city", func(c *fiber.Ctx) error {
		rec, err := service.FetchCurrent(c.UserContext(), c.Params("city"))
		if err != nil {
			return mapError(err)
		}
		return c.JSON(rec)
	})
}

func historyHandler(c *fiber.Ctx, service *weather.Service, city string) error {
	var q historyQuery
	if err := q.bind(c); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	total, records, err := service.History(city, q.Limit, q.Offset)
	if err != nil {
		return mapError(err)
	}
	if records == nil {
		records = []weather.WeatherRecord{}
	}

	return c.JSON(fiber.Map{
		"total":   total,
		"records": records,
	})
}

// historyQuery holds pagination parameters for the history endpoints.
type historyQuery struct {
	Limit  int `validate:"gte=1,lte=500"`
	Offset int `validate:"gte=0"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	var err error
	if h.Limit, err = queryInt(c, "limit", 50); err != nil {
		return err
	}
	if h.Offset, err = queryInt(c, "offset", 0); err != nil {
		return err
	}
	return validate.Struct(h)
}

// geoQuery holds coordinates for the reverse-geocode endpoint.
type geoQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseGeoQuery(c *fiber.Ctx) (geoQuery, error) {
	var q geoQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	var err error
	if q.Lat, err = strconv.ParseFloat(latStr, 64); err != nil {
		return q, errors.New("invalid latitude: " + latStr)
	}
	if q.Lon, err = strconv.ParseFloat(lonStr, 64); err != nil {
		return q, errors.New("invalid longitude: " + lonStr)
	}

	return q, validate.Struct(q)
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("invalid " + key + " parameter: " + v)
	}
	return n, nil
}

// mapError translates the domain error taxonomy into fiber errors. Fetch
// and storage failures are logged in full server-side but surfaced to
// clients as generic messages.
func mapError(err error) error {
	var validationErr *weather.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, validationErr.Error())
	}

	if errors.Is(err, weather.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "no weather data found")
	}

	var fetchErr *weather.FetchError
	if errors.As(err, &fetchErr) {
		log.Printf("ERROR: provider failure: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "failed to fetch data from weather provider")
	}

	var storageErr *weather.StorageError
	if errors.As(err, &storageErr) {
		log.Printf("ERROR: storage failure: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}

	log.Printf("ERROR: unexpected failure: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
}
