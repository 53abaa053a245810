package api

import (
	"context"
	"fmt"
	"foodgram/internal/entity"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	shoppingListFilename = "shopping_list.txt"
	shoppingListFooter   = "Happy shopping!"
)

func (h *HTTPHandler) ShoppingCart(c *gin.Context) {
	items, ok := h.buildShoppingList(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, entity.ShoppingListResponse{Items: items})
}

func (h *HTTPHandler) DownloadShoppingCart(c *gin.Context) {
	items, ok := h.buildShoppingList(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, shoppingListFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(renderShoppingList(items)))
}

func (h *HTTPHandler) buildShoppingList(c *gin.Context) ([]entity.ShoppingListItem, bool) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, err := h.shopping.BuildShoppingList(ctx, user.ID)
	if err != nil {
		RespondError(c, err)
		return nil, false
	}
	return items, true
}

// renderShoppingList 生成纯文本购物清单，每种食材一行
func renderShoppingList(items []entity.ShoppingListItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s (%s): %d\n", item.Name, item.MeasurementUnit, item.TotalAmount)
	}
	b.WriteString(shoppingListFooter)
	b.WriteString("\n")
	return b.String()
}
