// @title socializeAPP API
// @version v1
// @description Users, groups, memberships and shared expenses.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import "github.com/cristiano1098/socializeAPP/cmd"

func main() {
	cmd.Execute()
}
