package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/avstrong/roombook/internal/hotel"
	"github.com/avstrong/roombook/internal/roomtype"
)

type RoomType struct {
	Name        string  `yaml:"name"         validate:"required"`
	NightlyRate float64 `yaml:"nightly_rate" validate:"gt=0"`
	Capacity    int     `yaml:"capacity"     validate:"gte=1"`
}

type Room struct {
	Number int    `yaml:"number" validate:"gt=0"`
	Type   string `yaml:"type"   validate:"required"`
}

type Config struct {
	HotelName     string     `yaml:"hotel_name"      validate:"required"`
	MinNoticeDays int        `yaml:"min_notice_days" validate:"gte=0"`
	RoomTypes     []RoomType `yaml:"room_types"      validate:"required,min=1,unique=Name,dive"`
	Rooms         []Room     `yaml:"rooms"           validate:"unique=Number,dive"`
}

// Default reproduces the hotel the reservation desk has always started with.
func Default() Config {
	//nolint:gomnd
	return Config{
		HotelName:     "Grand Stay",
		MinNoticeDays: hotel.DefaultMinNoticeDays,
		RoomTypes: []RoomType{
			{Name: roomtype.Single, NightlyRate: 100, Capacity: 1},
			{Name: roomtype.Double, NightlyRate: 150, Capacity: 2},
			{Name: roomtype.Suite, NightlyRate: 300, Capacity: 4},
		},
		Rooms: []Room{
			{Number: 101, Type: roomtype.Single},
			{Number: 102, Type: roomtype.Double},
			{Number: 201, Type: roomtype.Suite},
			{Number: 301, Type: roomtype.Single},
			{Number: 302, Type: roomtype.Double},
		},
	}
}

// Load reads a YAML file on top of Default. An empty path yields Default.
func Load(path string) (Config, error) {
	conf := Default()

	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Parse(data, &conf); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return conf, nil
}

// Parse decodes YAML into conf, keeping fields that the document omits, and validates the result.
func Parse(data []byte, conf *Config) error {
	if err := yaml.Unmarshal(data, conf); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return conf.Validate()
}

func (c *Config) Validate() error {
	verr := newValidationError()

	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}

		for _, fe := range fieldErrs {
			verr.addError(fe.Namespace(), fmt.Sprintf("failed on '%s' rule", fe.Tag()))
		}
	}

	known := make(map[string]struct{}, len(c.RoomTypes))
	for _, t := range c.RoomTypes {
		known[t.Name] = struct{}{}
	}

	for i, r := range c.Rooms {
		if _, ok := known[r.Type]; !ok && r.Type != "" {
			verr.addError(fmt.Sprintf("Config.Rooms[%d].Type", i), fmt.Sprintf("unknown room type %q", r.Type))
		}
	}

	if verr.fieldsCount() > 0 {
		return verr
	}

	return nil
}

func (c *Config) Catalog() (*roomtype.Catalog, error) {
	types := make([]roomtype.Type, 0, len(c.RoomTypes))

	for _, t := range c.RoomTypes {
		types = append(types, roomtype.Type{
			Name:        t.Name,
			NightlyRate: t.NightlyRate,
			Capacity:    t.Capacity,
		})
	}

	catalog, err := roomtype.New(types...)
	if err != nil {
		return nil, fmt.Errorf("build room type catalog: %w", err)
	}

	return catalog, nil
}
