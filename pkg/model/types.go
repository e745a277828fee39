package model

import internalmodel "github.com/goliatone/go-viewgen/internal/model"

type WorldRef = internalmodel.WorldRef
type AssetBundle = internalmodel.AssetBundle
type WorldView = internalmodel.WorldView
type ViewQuery = internalmodel.ViewQuery
