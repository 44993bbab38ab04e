package domain

// ClientMessage is what the frontend sends over the WebSocket.
type ClientMessage struct {
	Type       string `json:"type"`
	JWT        string `json:"jwt,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	BoardSize  int    `json:"board_size,omitempty"`
	Color      int    `json:"color,omitempty"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
}

// ServerMessage is what the backend pushes to a client.
type ServerMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	GameID  string `json:"game_id,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
