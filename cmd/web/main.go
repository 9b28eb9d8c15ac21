// @title           ShopKart API
// @version         1.0
// @description     REST API мультитенантного e-commerce бэкенда (компании, пользователи, каталог).
// @contact.name    ShopKart Team
// @contact.email   support@shopkart.dev
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "shopkart_backend/internal/app"

func main() {
	app.Run()
}
