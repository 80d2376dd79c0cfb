package store

const (
	insertUsuarioQuery = `
		INSERT INTO usuario (UserName, Correo, Contrasena, Dia, Mes, Anio)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	getUsuarioByIDQuery = `
		SELECT id, UserName, Correo, Contrasena,
		       COALESCE(Dia, 0), COALESCE(Mes, 0), COALESCE(Anio, 0)
		FROM usuario WHERE id = ?
	`

	getUsuarioByCorreoQuery = `
		SELECT id, UserName, Correo, Contrasena,
		       COALESCE(Dia, 0), COALESCE(Mes, 0), COALESCE(Anio, 0)
		FROM usuario WHERE Correo = ?
	`

	listUsuariosQuery = `
		SELECT id, UserName, Correo, Contrasena,
		       COALESCE(Dia, 0), COALESCE(Mes, 0), COALESCE(Anio, 0)
		FROM usuario ORDER BY id
	`

	insertNoticiaQuery = `
		INSERT INTO noticias (titulo, contenido, categoria, autor, fecha_publicacion, tags, LIKES)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	noticiaColumns = `
		idnoticias, titulo, COALESCE(contenido, ''), COALESCE(categoria, ''),
		COALESCE(autor, ''), COALESCE(fecha_publicacion, ''), COALESCE(tags, ''), LIKES
	`

	getNoticiaQuery = `SELECT ` + noticiaColumns + ` FROM noticias WHERE idnoticias = ?`

	listNoticiasQuery = `SELECT ` + noticiaColumns + ` FROM noticias ORDER BY fecha_publicacion DESC`

	searchNoticiasQuery = `SELECT ` + noticiaColumns + ` FROM noticias WHERE tags LIKE ?`

	incrementNoticiaLikesQuery = `UPDATE noticias SET LIKES = LIKES + ? WHERE idnoticias = ?`

	insertComentarioQuery = `
		INSERT INTO comentarios (contenido, fechacoment, idusuario, idnoticias)
		VALUES (?, ?, ?, ?)
	`

	comentarioColumns = `
		idcomentarios, COALESCE(contenido, ''), COALESCE(fechacoment, ''), idusuario, idnoticias
	`

	getComentariosByUsuarioQuery = `
		SELECT ` + comentarioColumns + `
		FROM comentarios WHERE idusuario = ? ORDER BY idcomentarios
	`

	listComentariosQuery = `SELECT ` + comentarioColumns + ` FROM comentarios ORDER BY idcomentarios`

	getComentariosByNoticiaQuery = `
		SELECT c.idcomentarios, c.idnoticias, u.id, u.UserName,
		       COALESCE(c.fechacoment, ''), COALESCE(c.contenido, '')
		FROM comentarios c
		JOIN usuario u ON c.idusuario = u.id
		WHERE c.idnoticias = ?
		ORDER BY c.idcomentarios
	`

	countHistorialNoticiaOnDateQuery = `
		SELECT COUNT(*) FROM historialnoticias
		WHERE idusuarioHN = ? AND idnoticiaHN = ? AND DATE(fecha_vistah) = DATE(?)
	`

	insertHistorialNoticiaQuery = `
		INSERT INTO historialnoticias (fecha_vistah, idnoticiaHN, idusuarioHN)
		VALUES (?, ?, ?)
	`

	getHistorialNoticiasByUsuarioQuery = `
		SELECT IDHISTONOTI, fecha_vistah, idnoticiaHN, idusuarioHN
		FROM historialnoticias WHERE idusuarioHN = ? ORDER BY IDHISTONOTI
	`

	listHistorialNoticiasQuery = `
		SELECT IDHISTONOTI, fecha_vistah, idnoticiaHN, idusuarioHN
		FROM historialnoticias ORDER BY IDHISTONOTI
	`

	getHistorialNoticiasDetalleQuery = `
		SELECT hn.IDHISTONOTI, hn.fecha_vistah, hn.idnoticiaHN, hn.idusuarioHN,
		       n.idnoticias, n.titulo, COALESCE(n.categoria, ''), COALESCE(n.autor, '')
		FROM historialnoticias hn
		JOIN noticias n ON hn.idnoticiaHN = n.idnoticias
		WHERE hn.idusuarioHN = ?
		ORDER BY hn.fecha_vistah DESC
	`

	countLikeQuery = `
		SELECT COUNT(*) FROM likes_noticias WHERE idusuarioLI = ? AND idnoticiaLI = ?
	`

	insertLikeQuery = `
		INSERT INTO likes_noticias (idusuarioLI, idnoticiaLI, fecha_like)
		VALUES (?, ?, ?)
	`

	deleteLikeQuery = `
		DELETE FROM likes_noticias WHERE idusuarioLI = ? AND idnoticiaLI = ?
	`

	getLikesByUsuarioQuery = `
		SELECT idlike, idusuarioLI, idnoticiaLI, fecha_like
		FROM likes_noticias WHERE idusuarioLI = ? ORDER BY idlike
	`

	listLikesQuery = `
		SELECT idlike, idusuarioLI, idnoticiaLI, fecha_like
		FROM likes_noticias ORDER BY idlike
	`

	insertHistorialComentarioQuery = `
		INSERT INTO historialcomentarios (fecha_vista, idnoticiaHC, idusuarioHC, idcomentariosHC)
		VALUES (?, ?, ?, ?)
	`

	listHistorialComentariosQuery = `
		SELECT idhistocoment, fecha_vista, COALESCE(idnoticiaHC, 0), idusuarioHC,
		       COALESCE(idcomentariosHC, 0)
		FROM historialcomentarios ORDER BY idhistocoment
	`

	getHistorialComentariosDetalleQuery = `
		SELECT hc.idhistocoment, hc.fecha_vista, COALESCE(hc.idnoticiaHC, 0),
		       hc.idusuarioHC, COALESCE(hc.idcomentariosHC, 0),
		       COALESCE(c.contenido, ''), COALESCE(n.titulo, '')
		FROM historialcomentarios hc
		LEFT JOIN comentarios c ON hc.idcomentariosHC = c.idcomentarios
		LEFT JOIN noticias n ON hc.idnoticiaHC = n.idnoticias
		WHERE hc.idusuarioHC = ?
		ORDER BY hc.fecha_vista DESC
	`
)
