package domain

// Общий конверт ответа: {code, msg, data}
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Утилиты для сборки конвертов
func Success(data any) Result { return Result{Code: 200, Msg: "success", Data: data} }
func Fail(code int, msg string) Result {
	return Result{Code: code, Msg: msg}
}
