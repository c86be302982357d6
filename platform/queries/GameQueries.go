package queries

import (
	"encoding/json"

	"github.com/go-pg/pg/v10"
	socketio "github.com/googollee/go-socket.io"
	"github.com/sirupsen/logrus"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/cache"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/engine"
)

func VerifyGame(id string, db *pg.DB) bool {
	game := &models.GameRecord{ID: id}
	err := db.Model(game).WherePK().Select()
	return err == nil
}

func GetUserData(userID string, db *pg.DB) (*models.User, error) {
	user := &models.User{Id: userID}
	if err := db.Model(user).WherePK().Select(); err != nil {
		return nil, err
	}
	return user, nil
}

func CreatePlayer(seat models.SeatRecord, db *pg.DB) error {
	_, err := db.Model(&seat).Insert()
	return err
}

// StartGame turns the seated roster into a live engine state. Needs at
// least two seats; the initial blob goes to the store and the lobby
// row flips to playing.
func StartGame(gameID string, db *pg.DB, store *cache.GameStateStore, eng *engine.Engine) (*models.GameState, error) {
	var seats []models.SeatRecord
	if err := db.Model(&seats).Where("game_id = ?", gameID).Select(); err != nil {
		return nil, err
	}
	if len(seats) <= 1 {
		return nil, pg.ErrNoRows
	}

	roster := make([]engine.PlayerSeat, 0, len(seats))
	for _, seat := range seats {
		roster = append(roster, engine.PlayerSeat{
			ID:    seat.UserID,
			Name:  seat.Username,
			Token: seat.Token,
		})
	}
	g := eng.InitializeGame(gameID, roster)
	blob, err := engine.Serialize(g)
	if err != nil {
		return nil, err
	}
	if err := store.SaveGameState(gameID, blob); err != nil {
		return nil, err
	}

	record := &models.GameRecord{ID: gameID}
	if _, err := db.Model(record).WherePK().Set("status = ?", models.StatusPlaying).Update(); err != nil {
		logrus.WithError(err).Warn("failed to flip game status")
	}
	return g, nil
}

// ArchiveGame records the outcome of a finished match in postgres,
// drops the live blob and releases the engine lock entry.
func ArchiveGame(g *models.GameState, db *pg.DB, store *cache.GameStateStore, eng *engine.Engine) error {
	record := &models.GameRecord{ID: g.GameID}
	winner := engine.GetWinner(g)
	if _, err := db.Model(record).WherePK().
		Set("status = ?", models.StatusFinished).
		Set("winner = ?", winner).
		Update(); err != nil {
		return err
	}
	for _, ev := range g.Events {
		payload, _ := json.Marshal(ev.Payload)
		row := &models.EventRecord{
			ID:        ev.ID,
			GameID:    ev.GameID,
			Type:      ev.Type,
			Payload:   string(payload),
			Timestamp: ev.Timestamp,
		}
		if _, err := db.Model(row).Insert(); err != nil {
			logrus.WithError(err).Warn("failed to archive event")
		}
	}
	if err := store.DeleteGameState(g.GameID); err != nil {
		logrus.WithError(err).Warn("failed to drop state blob")
	}
	eng.Forget(g.GameID)
	return nil
}

// DeletePlayer removes a seat when a player leaves the lobby or the
// match. If the leaver held the turn the seat order moves on; if only
// one seat remains the match is torn down.
func DeletePlayer(userID string, gameID string, db *pg.DB, store *cache.GameStateStore, eng *engine.Engine, server *socketio.Server) error {
	seat := new(models.SeatRecord)
	if _, err := db.Model(seat).Where("user_id = ? and game_id = ?", userID, gameID).Delete(); err != nil {
		logrus.WithError(err).Warn("failed to delete seat")
	}

	blob, err := store.LoadGameState(gameID)
	if err != nil || blob == "" {
		CheckDB(gameID, db)
		return err
	}
	g, err := engine.Deserialize(blob)
	if err != nil {
		return err
	}

	if p := g.PlayerByID(userID); p != nil && p.IsActive && !p.IsBankrupt {
		// a leaver forfeits to the bank
		res := eng.Forfeit(gameID, userID)
		if res.OK {
			g = res.State
			server.BroadcastToRoom("/", gameID, "change-turn", g.CurrentPlayer().ID)
		}
	}

	if g.Status == models.StatusFinished {
		if err := ArchiveGame(g, db, store, eng); err != nil {
			logrus.WithError(err).Warn("failed to archive game")
		}
		server.BroadcastToRoom("/", gameID, "game-over", engine.GetWinner(g))
	}
	CheckDB(gameID, db)
	return nil
}

// CheckDB drops the lobby row once no seats remain.
func CheckDB(gameID string, db *pg.DB) {
	var seats []models.SeatRecord
	err := db.Model(&seats).Where("game_id = ?", gameID).Select()
	if err != nil || len(seats) == 0 {
		game := new(models.GameRecord)
		db.Model(game).Where("id = ?", gameID).Delete()
	}
}
