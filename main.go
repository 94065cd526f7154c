package main

import (
	"context"
	"embed"
	"runtime"

	"jsonlens/app"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	appInstance := app.NewApp()

	AppMenu := menu.NewMenu()
	if runtime.GOOS == "darwin" {
		AppMenu.Append(menu.AppMenu())
	}

	FileMenu := AppMenu.AddSubmenu("File")
	FileMenu.AddText("Open File", keys.CmdOrCtrl("o"), func(_ *menu.CallbackData) {
		wruntime.EventsEmit(appInstance.Ctx(), "menu:open")
	})
	FileMenu.AddSeparator()
	FileMenu.AddText("Export CSV", nil, func(_ *menu.CallbackData) {
		wruntime.EventsEmit(appInstance.Ctx(), "menu:exportCSV")
	})
	FileMenu.AddText("Export XLSX", nil, func(_ *menu.CallbackData) {
		wruntime.EventsEmit(appInstance.Ctx(), "menu:exportXLSX")
	})
	FileMenu.AddSeparator()
	FileMenu.AddText("Cancel Current Operation", keys.CmdOrCtrl("."), func(_ *menu.CallbackData) {
		appInstance.CancelCurrent()
	})

	ViewMenu := AppMenu.AddSubmenu("View")
	ViewMenu.AddText("Toggle Search", keys.CmdOrCtrl("f"), func(_ *menu.CallbackData) {
		wruntime.EventsEmit(appInstance.Ctx(), "menu:toggleSearch")
	})

	err := wails.Run(&options.App{
		Title:  "jsonlens",
		Width:  1024,
		Height: 768,
		Menu:   AppMenu,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			appInstance.Startup(ctx)
		},
		Bind: []interface{}{
			appInstance,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
