package response

// Envelope is the JSON shape every endpoint returns.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func Message(msg string) Envelope {
	return Envelope{Success: true, Message: msg}
}

func MessageWithData(msg string, data interface{}) Envelope {
	return Envelope{Success: true, Message: msg, Data: data}
}

func Fail(msg string) Envelope {
	return Envelope{Success: false, Message: msg}
}

func Error(msg, detail string) Envelope {
	return Envelope{Success: false, Message: msg, Error: detail}
}
