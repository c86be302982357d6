package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/pkg"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/database"
)

func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	game := &models.GameRecord{
		ID:     pkg.RandString(8),
		Name:   gameCreateDto.Name,
		Status: models.StatusWaiting,
	}
	if _, err := db.Model(game).Insert(); err != nil {
		logrus.WithError(err).Error("failed to create game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"id": game.ID})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.GameRecord
	if err := db.Model(&games).Where("status = ?", models.StatusWaiting).Select(); err != nil {
		logrus.WithError(err).Error("failed to list games")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func FindAvailGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game := new(models.GameRecord)
	if err := db.Model(game).Where("status = ?", models.StatusWaiting).Limit(1).Select(); err != nil {
		return c.JSON(fiber.Map{"id": nil})
	}
	return c.JSON(fiber.Map{"id": game.ID})
}

func VerifyGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	game := &models.GameRecord{ID: verifyGameDto.Code}
	if err := db.Model(game).WherePK().Select(); err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true})
}
