package retro

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET(basePath, handler.GetAllRetroBoards)
	rg.POST(basePath, handler.SaveRetroBoard)
	rg.GET(basePath+"/:uuid", handler.FindRetroBoardByID)
	rg.GET(basePath+"/:uuid/cards", handler.GetAllCardsFromBoard)
	rg.PUT(basePath+"/:uuid/cards", handler.AddCardToRetroBoard)
	rg.GET(basePath+"/:uuid/cards/:cardUuid", handler.GetCardFromRetroBoard)
	rg.DELETE(basePath+"/:uuid/cards/:cardUuid", handler.DeleteCardFromRetroBoard)
}
