package http

import (
	"context"

	"auth-srv/pkg/locale"
)

type messageKey int

const (
	msgLoginSuccess messageKey = iota
	msgUserNotFound
	msgWrongPassword
	msgServerError
	msgTokenError
	msgInvalidRequest
)

var messages = map[string]map[messageKey]string{
	locale.EN: {
		msgLoginSuccess:   "Login successful",
		msgUserNotFound:   "User not found",
		msgWrongPassword:  "Incorrect password",
		msgServerError:    "Server error",
		msgTokenError:     "Error generating token",
		msgInvalidRequest: "Invalid request body",
	},
	locale.ES: {
		msgLoginSuccess:   "Login exitoso",
		msgUserNotFound:   "Usuario no encontrado",
		msgWrongPassword:  "Contraseña incorrecta",
		msgServerError:    "Error del servidor",
		msgTokenError:     "Error al generar el token",
		msgInvalidRequest: "Cuerpo de la petición inválido",
	},
}

func message(ctx context.Context, key messageKey) string {
	if msg, ok := messages[locale.GetLang(ctx)][key]; ok {
		return msg
	}
	return messages[locale.DefaultLang][key]
}
