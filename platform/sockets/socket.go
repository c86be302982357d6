package socket

import (
	"encoding/json"
	"net/http"
	"strconv"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/cache"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/database"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/engine"
	"github.com/ZebLawrence/monopoly-web-game-sub000/platform/queries"
)

// actionEvents maps socket event names onto engine action types.
var actionEvents = map[string]engine.ActionType{
	"roll-dice":          engine.ActionRollDice,
	"roll-for-doubles":   engine.ActionRollForDoubles,
	"request-buy":        engine.ActionBuyProperty,
	"decline-buy":        engine.ActionDeclineProperty,
	"auction-bid":        engine.ActionAuctionBid,
	"auction-pass":       engine.ActionAuctionPass,
	"buy-house":          engine.ActionBuildHouse,
	"buy-hotel":          engine.ActionBuildHotel,
	"sell-building":      engine.ActionSellBuilding,
	"mortgage":           engine.ActionMortgage,
	"unmortgage":         engine.ActionUnmortgage,
	"propose-trade":      engine.ActionProposeTrade,
	"accept-trade":       engine.ActionAcceptTrade,
	"reject-trade":       engine.ActionRejectTrade,
	"counter-trade":      engine.ActionCounterTrade,
	"pay-out-jail":       engine.ActionPayJailFine,
	"use-jail-card":      engine.ActionUseJailCard,
	"declare-bankruptcy": engine.ActionDeclareBankruptcy,
	"end-turn":           engine.ActionEndTurn,
}

// actionRequest is the wire shape for every in-game intent.
type actionRequest struct {
	GameID     string                `json:"game_id"`
	UserID     string                `json:"user_id"`
	SpaceID    int                   `json:"space_id"`
	Amount     int                   `json:"amount"`
	TradeID    string                `json:"trade_id"`
	Trade      *engine.TradeProposal `json:"trade"`
	CreditorID string                `json:"creditor_id"`
}

// CreateSocketIOServer runs the realtime transport. One room per game;
// rule failures go back to the caller only, successful actions
// broadcast the fresh state to the room.
func CreateSocketIOServer() {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	store := cache.NewGameStateStore(pool)
	eng := engine.New(store)

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var req map[string]string
		json.Unmarshal([]byte(jsonStr), &req)
		gameID, ok := req["game_id"]
		if !ok {
			s.Emit("error-message", "Game id not passed")
			return
		}
		if !queries.VerifyGame(gameID, db) {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}
		userID, ok := req["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			s.Emit("failed")
			return
		}
		user, err := queries.GetUserData(userID, db)
		if err != nil {
			s.Emit("error-message", "User retrieval failed")
			s.Emit("failed")
			return
		}
		err = queries.CreatePlayer(models.SeatRecord{
			GameID:   gameID,
			UserID:   userID,
			Username: user.Email,
			Token:    req["token"],
		}, db)
		if err != nil {
			logrus.WithError(err).Error("failed creating player")
			s.Emit("error-message", "Failed creating player")
			s.Emit("failed")
			return
		}
		server.BroadcastToRoom("/", gameID, "player-join")
		s.Join(gameID)
		s.Emit("joined-game", strconv.Itoa(server.RoomLen("/", gameID)))
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var req map[string]string
		json.Unmarshal([]byte(jsonStr), &req)
		s.Leave(req["game_id"])
		go queries.DeletePlayer(req["user_id"], req["game_id"], db, store, eng, server)
		server.BroadcastToRoom("/", req["game_id"], "player-left")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameID string) {
		g, err := queries.StartGame(gameID, db, store, eng)
		if err != nil {
			s.Emit("error-message", "Unable to start game")
			logrus.WithError(err).Warn("failed to start game")
			return
		}
		stateJSON, err := engine.Serialize(g)
		if err != nil {
			logrus.WithError(err).Error("failed to serialize state")
			return
		}
		server.BroadcastToRoom("/", gameID, "game-start", stateJSON)
		server.BroadcastToRoom("/", gameID, "change-turn", g.CurrentPlayer().ID)

		// relay engine events for UI and audio cues
		events, cancel := eng.Bus().Subscribe(gameID)
		go func() {
			defer cancel()
			for ev := range events {
				payload, _ := json.Marshal(ev)
				server.BroadcastToRoom("/", gameID, "game-event", string(payload))
				if ev.Type == models.EvGameFinished {
					return
				}
			}
		}()
	})

	for eventName, actionType := range actionEvents {
		eventName, actionType := eventName, actionType
		server.OnEvent("/", eventName, func(s socketio.Conn, jsonStr string) {
			var req actionRequest
			if err := json.Unmarshal([]byte(jsonStr), &req); err != nil {
				s.Emit("error-message", "Bad request")
				return
			}
			res := eng.ProcessAction(req.GameID, req.UserID, engine.Action{
				Type:       actionType,
				SpaceID:    req.SpaceID,
				Amount:     req.Amount,
				TradeID:    req.TradeID,
				Trade:      req.Trade,
				CreditorID: req.CreditorID,
			})
			if !res.OK {
				// only the originating client hears about a failed attempt
				s.Emit("error-message", res.Err.Msg)
				return
			}
			stateJSON, err := engine.Serialize(res.State)
			if err != nil {
				logrus.WithError(err).Error("failed to serialize state")
				return
			}
			server.BroadcastToRoom("/", req.GameID, "game-state", stateJSON)
			if actionType == engine.ActionEndTurn || actionType == engine.ActionDeclareBankruptcy {
				server.BroadcastToRoom("/", req.GameID, "change-turn", res.State.CurrentPlayer().ID)
			}
			if res.State.Status == models.StatusFinished {
				if err := queries.ArchiveGame(res.State, db, store, eng); err != nil {
					logrus.WithError(err).Warn("failed to archive game")
				}
				server.BroadcastToRoom("/", req.GameID, "game-over", engine.GetWinner(res.State))
			}
		})
	}

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
