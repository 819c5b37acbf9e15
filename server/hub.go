package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"uvalue/model"
)

// 消息类型
const (
	msgCompute    = "compute"
	msgCompare    = "compare"
	msgMaterials  = "materials"
	msgAssemblies = "assemblies"

	replyComputed = "computed"
	replyCompared = "compared"
	replyError    = "error"
)

// Hub 一个 websocket 连接对应一个 Hub，请求和响应各由一个 goroutine 处理
type Hub struct {
	id   string
	s    *Server
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(s *Server, conn *websocket.Conn) *Hub {
	return &Hub{
		id:    uuid.NewString(),
		s:     s,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.dispatch(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithFields(log.Fields{
					"session": h.id,
					"type":    reply.Type,
				}).WithError(err).Warn("write reply")
			}
		case <-h.done:
			return
		}
	}
}

// dispatch 处理一条请求消息，所有参数都来自消息本身
func (h *Hub) dispatch(msg model.Msg) model.Msg {
	logger := log.WithFields(log.Fields{
		"session": h.id,
		"type":    msg.Type,
	})
	var (
		content interface{}
		replyTo string
		err     error
	)
	switch msg.Type {
	case msgCompute:
		var req model.ComputeReq
		if err = json.Unmarshal([]byte(msg.Content), &req); err != nil {
			err = NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid message content", err)
			break
		}
		replyTo = replyComputed
		content, err = h.s.compute(req)
	case msgCompare:
		var req model.CompareReq
		if err = json.Unmarshal([]byte(msg.Content), &req); err != nil {
			err = NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid message content", err)
			break
		}
		replyTo = replyCompared
		content, err = h.s.compare(req)
	case msgMaterials:
		replyTo = msgMaterials
		content = h.s.catalog.Materials()
	case msgAssemblies:
		replyTo = msgAssemblies
		content = h.s.assemblies.All()
	default:
		logger.Warn("no such type")
		err = NewHTTPError(http.StatusBadRequest, "unknown_type", "no such type: "+msg.Type, nil)
	}

	if err != nil {
		logger.WithError(err).Info("request failed")
		return errorMsg(asHTTPError(err))
	}
	data, err := json.Marshal(content)
	if err != nil {
		logger.WithError(err).Error("encode reply")
		return errorMsg(asHTTPError(err))
	}
	return model.Msg{Type: replyTo, Content: string(data)}
}

func errorMsg(e *HTTPError) model.Msg {
	data, _ := json.Marshal(e.body())
	return model.Msg{Type: replyError, Content: string(data)}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	hub := NewHub(s, conn)
	log.WithField("session", hub.id).Info("websocket connected")
	go hub.handleRequest()
	go hub.handleResponse()
	defer close(hub.done)

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("session", hub.id).WithError(err).Warn("websocket read")
			}
			log.WithField("session", hub.id).Info("websocket disconnected")
			return
		}
		hub.msg <- msg
	}
}
