// @title           taskpay API
// @version         1.0
// @description     Task management and payment initialization backend.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "taskpay_backend/internal/app"

func main() {
	app.Run()
}
