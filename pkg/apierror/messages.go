package apierror

// Catálogos de mensajes por defecto de las categorías. La aplicación los
// registra en su Translator al arranque:
//
//	tr := i18n.New(language.English)
//	tr.Register(language.English, apierror.MessagesEN)
//	tr.Register(language.Spanish, apierror.MessagesES)
var (
	MessagesEN = map[string]string{
		"error.bad_request":    "bad request",
		"error.unauthorized":   "user not authenticated",
		"error.forbidden":      "permission denied",
		"error.not_found":      "resource not found",
		"error.unknown_object": "unknown object identifier",
		"error.internal":       "internal server error",
	}

	MessagesES = map[string]string{
		"error.bad_request":    "petición inválida",
		"error.unauthorized":   "usuario no autenticado",
		"error.forbidden":      "acceso denegado",
		"error.not_found":      "recurso no encontrado",
		"error.unknown_object": "identificador de objeto desconocido",
		"error.internal":       "error interno del servidor",
	}
)
