package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"dragonrelay/internal/protocol"
	"dragonrelay/internal/registry"
)

type healthReply struct {
	Code int `json:"code"`
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthReply{Code: http.StatusOK})
}

// RegisterRoom allocates a room id without a live connection. The room
// itself only comes into existence once a member creates or joins it; an
// empty room is never kept in the registry.
func RegisterRoom(log *zap.Logger, rooms *registry.Rooms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		for {
			candidate, err := registry.GenerateRoomID()
			if err != nil {
				http.Error(w, "failed to generate room id", http.StatusInternalServerError)
				return
			}
			if _, taken := rooms.Members(candidate); !taken {
				id = candidate
				break
			}
			log.Info("room id collision, resampling", zap.String("room_id", candidate))
		}
		frame, err := protocol.Encode(&protocol.RoomCreated{RoomID: id})
		if err != nil {
			http.Error(w, "failed to encode reply", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(frame); err != nil {
			log.Debug("writing register-room reply", zap.Error(err))
		}
	}
}
