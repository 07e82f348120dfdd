package discord

// Disparadores de texto (comparación exacta con el contenido del mensaje).
const (
	CmdCreatePanel       = "!create_panel"
	CmdUpdatePermissions = "!update_permissions"
)

// Textos visibles para el usuario.
const (
	msgSyncStarted = "🔄 パーミッションを更新中..."
	msgSyncDone    = "✅ 完了しました！"
	msgUnexpected  = "⚠️ 予期しないエラーが発生しました。"
)
