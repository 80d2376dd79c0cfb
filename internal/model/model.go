package model

// Record types for the relational schema. Field and JSON names keep the
// Spanish column names the frontend already depends on.

type Usuario struct {
	ID         int64  `json:"id"`
	UserName   string `json:"UserName"`
	Correo     string `json:"Correo"`
	Contrasena string `json:"-"` // bcrypt hash, never serialized
	Dia        int64  `json:"Dia"`
	Mes        int64  `json:"Mes"`
	Anio       int64  `json:"Anio"`
}

type Noticia struct {
	IDNoticias       int64  `json:"idnoticias"`
	Titulo           string `json:"titulo"`
	Contenido        string `json:"contenido"`
	Categoria        string `json:"categoria"`
	Autor            string `json:"autor"`
	FechaPublicacion string `json:"fecha_publicacion"`
	Tags             string `json:"tags"`
	Likes            int64  `json:"LIKES"`
}

type Comentario struct {
	IDComentarios int64  `json:"idcomentarios"`
	Contenido     string `json:"contenido"`
	FechaComent   string `json:"fechacoment"`
	IDUsuario     int64  `json:"idusuario"`
	IDNoticias    int64  `json:"idnoticias"`
}

// ComentarioConUsuario is the comentarios-usuario join returned for a news item.
type ComentarioConUsuario struct {
	IDComentarios int64  `json:"idcomentarios"`
	IDNoticias    int64  `json:"idnoticias"`
	IDUsuario     int64  `json:"idusuario"`
	UserName      string `json:"username"`
	FechaComent   string `json:"fechacoment"`
	Contenido     string `json:"contenido"`
}

type HistorialNoticia struct {
	ID         int64  `json:"IDHISTONOTI"`
	FechaVista string `json:"fecha_vistah"`
	IDNoticia  int64  `json:"idnoticiaHN"`
	IDUsuario  int64  `json:"idusuarioHN"`
}

// HistorialNoticiaDetalle joins the view history with the viewed news item.
type HistorialNoticiaDetalle struct {
	HistorialNoticia
	IDNoticias int64  `json:"idnoticias"`
	Titulo     string `json:"titulo"`
	Categoria  string `json:"categoria"`
	Autor      string `json:"autor"`
}

type LikeNoticia struct {
	ID        int64  `json:"idlike"`
	IDUsuario int64  `json:"idusuarioLI"`
	IDNoticia int64  `json:"idnoticiaLI"`
	FechaLike string `json:"fecha_like"`
}

type HistorialComentario struct {
	ID           int64  `json:"idhistocoment"`
	FechaVista   string `json:"fecha_vista"`
	IDNoticia    int64  `json:"idnoticiaHC"`
	IDUsuario    int64  `json:"idusuarioHC"`
	IDComentario int64  `json:"idcomentariosHC"`
}

// HistorialComentarioDetalle joins the comment history with comment body and
// news title.
type HistorialComentarioDetalle struct {
	HistorialComentario
	Contenido string `json:"contenido"`
	Titulo    string `json:"titulo"`
}
