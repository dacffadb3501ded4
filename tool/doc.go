// Package tool exposes askweb's external services as langchaingo tools, so
// the Exa search and the weather lookup plug into agents the same way any
// other tools.Tool does.
//
// # Available Tools
//
// ## Exa Search
//
//	searchTool, err := tool.NewExaSearch(client, 5)
//	if err != nil {
//		return err
//	}
//	result, err := searchTool.Call(ctx, "latest developments in quantum computing")
//
// ## Current Weather
//
//	weatherTool, err := tool.NewCurrentWeather(client)
//	if err != nil {
//		return err
//	}
//	result, err := weatherTool.Call(ctx, "London")
package tool
