package controller

import (
	"strconv"

	"list-ui/web/service"

	"github.com/gin-gonic/gin"
)

// ItemForm carries the text of a new list item.
type ItemForm struct {
	Text string `json:"text" form:"text"`
}

// ItemController exposes the item API. Every route requires an
// authenticated session and operates only on the caller's own collection.
type ItemController struct {
	BaseController

	itemService service.ItemService
}

// NewItemController creates a new ItemController and initializes its routes.
func NewItemController(g *gin.RouterGroup) *ItemController {
	a := &ItemController{}
	a.initRouter(g)
	return a
}

func (a *ItemController) initRouter(g *gin.RouterGroup) {
	items := g.Group("/panel/api/items")
	items.Use(a.checkLogin)

	items.GET("/list", a.getItems)
	items.POST("/add", a.addItem)
	items.POST("/del/:id", a.delItem)
}

// getItems returns the caller's items in insertion order.
func (a *ItemController) getItems(c *gin.Context) {
	user := loginUser(c)
	items, err := a.itemService.GetItems(user.Id)
	jsonObj(c, items, err)
}

// addItem appends an item to the caller's list.
func (a *ItemController) addItem(c *gin.Context) {
	var form ItemForm
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, "invalid form data", err)
		return
	}

	user := loginUser(c)
	item, err := a.itemService.AddItem(user.Id, form.Text)
	jsonObj(c, item, err)
}

// delItem removes the item with the given id from the caller's list. A
// nonexistent id is a no-op, not an error.
func (a *ItemController) delItem(c *gin.Context) {
	itemId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "invalid item id", err)
		return
	}

	user := loginUser(c)
	err = a.itemService.DelItem(user.Id, itemId)
	jsonMsg(c, "delete item", err)
}
