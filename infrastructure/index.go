package infrastructure

var server = ginServer{}

func StartServer() {
	server.Start()
}
