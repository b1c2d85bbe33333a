/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package words

var builtin = []Category{
	{
		ID:   "comida-bebida",
		Name: "Comida y bebida",
		Pairs: []WordPair{
			{Civil: "Hamburguesa", Impostor: "Sandwich", Theme: "Comida"},
			{Civil: "Paella", Impostor: "Risotto", Theme: "Arroces"},
			{Civil: "Taco", Impostor: "Burrito", Theme: "Mexicana"},
			{Civil: "Sushi", Impostor: "Poke", Theme: "Asiatica"},
			{Civil: "Ramen", Impostor: "Pho", Theme: "Sopas"},
			{Civil: "Arepa", Impostor: "Gordita", Theme: "Latino"},
			{Civil: "Tamal", Impostor: "Hallaca", Theme: "Latino"},
			{Civil: "Ceviche", Impostor: "Cocktail", Theme: "Mariscos"},
			{Civil: "Croissant", Impostor: "Concha", Theme: "Panaderia"},
			{Civil: "Panqueque", Impostor: "Crepa", Theme: "Desayuno"},
			{Civil: "Chocolate", Impostor: "Caramelo", Theme: "Dulces"},
			{Civil: "Helado", Impostor: "Raspado", Theme: "Postres"},
			{Civil: "Cafe", Impostor: "Te", Theme: "Bebidas"},
			{Civil: "Cerveza", Impostor: "Sidra", Theme: "Bebidas"},
			{Civil: "Vino", Impostor: "Champagne", Theme: "Bebidas"},
			{Civil: "Queso", Impostor: "Requeson", Theme: "Lacteos"},
			{Civil: "Palomitas", Impostor: "Nachos", Theme: "Snacks"},
		},
	},
	{
		ID:   "sistemas-devops",
		Name: "Sistemas y DevOps",
		Pairs: []WordPair{
			{Civil: "Servidor", Impostor: "Mainframe", Theme: "Infra"},
			{Civil: "Docker", Impostor: "Maquina virtual", Theme: "Infra"},
			{Civil: "Balanceador", Impostor: "Proxy", Theme: "Networking"},
			{Civil: "Cache", Impostor: "CDN", Theme: "Performance"},
			{Civil: "Firewall", Impostor: "WAF", Theme: "Seguridad"},
			{Civil: "Kubernetes", Impostor: "Nomad", Theme: "Orquestacion"},
			{Civil: "RabbitMQ", Impostor: "Kafka", Theme: "Mensajeria"},
			{Civil: "API Gateway", Impostor: "Service Mesh", Theme: "Arquitectura"},
			{Civil: "Postgres", Impostor: "MySQL", Theme: "Base de datos"},
			{Civil: "Redis", Impostor: "Memcached", Theme: "Cache"},
			{Civil: "Bash", Impostor: "Powershell", Theme: "CLI"},
			{Civil: "CI/CD", Impostor: "Deploy manual", Theme: "Release"},
			{Civil: "Grafana", Impostor: "DataDog", Theme: "Observabilidad"},
			{Civil: "Logs", Impostor: "Traces", Theme: "Monitoreo"},
			{Civil: "Backup", Impostor: "Replica", Theme: "Resiliencia"},
		},
	},
	{
		ID:   "tecnologia-apps",
		Name: "Tecnologia y apps",
		Pairs: []WordPair{
			{Civil: "Laptop", Impostor: "Tablet", Theme: "Dispositivos"},
			{Civil: "Smartphone", Impostor: "Smartwatch", Theme: "Gadgets"},
			{Civil: "Bluetooth", Impostor: "NFC", Theme: "Conectividad"},
			{Civil: "Instagram", Impostor: "TikTok", Theme: "Social"},
			{Civil: "Netflix", Impostor: "YouTube", Theme: "Streaming"},
			{Civil: "Spotify", Impostor: "Apple Music", Theme: "Musica"},
			{Civil: "Dropbox", Impostor: "Google Drive", Theme: "Nube"},
			{Civil: "Gmail", Impostor: "Outlook", Theme: "Correo"},
			{Civil: "GPS", Impostor: "Brujula", Theme: "Navegacion"},
			{Civil: "Figma", Impostor: "Canva", Theme: "Diseno"},
			{Civil: "Whatsapp", Impostor: "Telegram", Theme: "Mensajeria"},
			{Civil: "Smartwatch", Impostor: "Banda fitness", Theme: "Wearables"},
		},
	},
	{
		ID:   "deportes",
		Name: "Deportes",
		Pairs: []WordPair{
			{Civil: "Futbol", Impostor: "Rugby", Theme: "Equipo"},
			{Civil: "Baloncesto", Impostor: "Voleibol", Theme: "Equipo"},
			{Civil: "Tenis", Impostor: "Padel", Theme: "Raqueta"},
			{Civil: "Surf", Impostor: "Bodyboard", Theme: "Agua"},
			{Civil: "Natacion", Impostor: "Waterpolo", Theme: "Piscina"},
			{Civil: "Ciclismo", Impostor: "Spinning", Theme: "Ruedas"},
			{Civil: "Boxeo", Impostor: "MMA", Theme: "Combate"},
			{Civil: "Atletismo", Impostor: "Maraton", Theme: "Pista"},
			{Civil: "Escalada", Impostor: "Boulder", Theme: "Montana"},
			{Civil: "Hockey", Impostor: "Beisbol", Theme: "Equipo"},
			{Civil: "Esgrima", Impostor: "Arco", Theme: "Precision"},
		},
	},
	{
		ID:   "animales",
		Name: "Animales",
		Pairs: []WordPair{
			{Civil: "Lobo", Impostor: "Perro", Theme: "Caninos"},
			{Civil: "Gato", Impostor: "Lince", Theme: "Felinos"},
			{Civil: "Jirafa", Impostor: "Cebra", Theme: "Safari"},
			{Civil: "Camello", Impostor: "Llama", Theme: "Desierto"},
			{Civil: "Koala", Impostor: "Panda", Theme: "Tiernos"},
			{Civil: "Leon", Impostor: "Tigre", Theme: "Felinos"},
			{Civil: "Delfin", Impostor: "Foca", Theme: "Marinos"},
			{Civil: "Tiburon", Impostor: "Mantaraya", Theme: "Marinos"},
			{Civil: "Aguila", Impostor: "Halcon", Theme: "Aves"},
			{Civil: "Oso polar", Impostor: "Grizzly", Theme: "Osos"},
		},
	},
	{
		ID:   "naturaleza-clima",
		Name: "Naturaleza y clima",
		Pairs: []WordPair{
			{Civil: "Oceano", Impostor: "Lago", Theme: "Agua"},
			{Civil: "Desierto", Impostor: "Sabana", Theme: "Climas"},
			{Civil: "Bosque", Impostor: "Selva", Theme: "Verde"},
			{Civil: "Volcan", Impostor: "Geyser", Theme: "Geologia"},
			{Civil: "Cascada", Impostor: "Riachuelo", Theme: "Agua"},
			{Civil: "Nube", Impostor: "Niebla", Theme: "Cielo"},
			{Civil: "Trueno", Impostor: "Relampago", Theme: "Tormenta"},
			{Civil: "Isla", Impostor: "Peninsula", Theme: "Geografia"},
			{Civil: "Glaciar", Impostor: "Iceberg", Theme: "Hielo"},
			{Civil: "Meteoro", Impostor: "Cometa", Theme: "Espacio"},
		},
	},
	{
		ID:   "lugares-viajes",
		Name: "Lugares y viajes",
		Pairs: []WordPair{
			{Civil: "Playa", Impostor: "Piscina", Theme: "Verano"},
			{Civil: "Montana", Impostor: "Colina", Theme: "Altura"},
			{Civil: "Parque", Impostor: "Plaza", Theme: "Ciudad"},
			{Civil: "Museo", Impostor: "Galeria", Theme: "Arte"},
			{Civil: "Biblioteca", Impostor: "Libreria", Theme: "Lectura"},
			{Civil: "Aeropuerto", Impostor: "Estacion", Theme: "Viaje"},
			{Civil: "Camping", Impostor: "Glamping", Theme: "Aventura"},
			{Civil: "Hotel", Impostor: "Hostal", Theme: "Hospedaje"},
			{Civil: "Safari", Impostor: "Zoo", Theme: "Animales"},
			{Civil: "Rascacielos", Impostor: "Edificio", Theme: "Ciudad"},
		},
	},
	{
		ID:   "hogar-ciudad",
		Name: "Hogar y ciudad",
		Pairs: []WordPair{
			{Civil: "Cama", Impostor: "Sofa", Theme: "Casa"},
			{Civil: "Cocina", Impostor: "Comedor", Theme: "Casa"},
			{Civil: "Balcon", Impostor: "Terraza", Theme: "Casa"},
			{Civil: "Aspiradora", Impostor: "Escoba", Theme: "Limpieza"},
			{Civil: "Jabon", Impostor: "Detergente", Theme: "Limpieza"},
			{Civil: "Lampara", Impostor: "Foco", Theme: "Luz"},
			{Civil: "Jardin", Impostor: "Patio", Theme: "Exterior"},
			{Civil: "Alarma", Impostor: "Cerradura", Theme: "Seguridad"},
			{Civil: "Cuadro", Impostor: "Espejo", Theme: "Decoracion"},
			{Civil: "Ascensor", Impostor: "Escalera", Theme: "Edificios"},
		},
	},
	{
		ID:   "arte-entretenimiento",
		Name: "Arte y entretenimiento",
		Pairs: []WordPair{
			{Civil: "Cine", Impostor: "Teatro", Theme: "Escena"},
			{Civil: "Serie", Impostor: "Pelicula", Theme: "Pantalla"},
			{Civil: "Podcast", Impostor: "Radio", Theme: "Audio"},
			{Civil: "Blog", Impostor: "Newsletter", Theme: "Escritura"},
			{Civil: "Pintura", Impostor: "Escultura", Theme: "Arte"},
			{Civil: "Danza", Impostor: "Ballet", Theme: "Movimiento"},
			{Civil: "Concierto", Impostor: "Festival", Theme: "Musica"},
			{Civil: "Batman", Impostor: "Robin", Theme: "Comics"},
			{Civil: "Iron Man", Impostor: "Capitan", Theme: "Comics"},
			{Civil: "Juego de mesa", Impostor: "Cartas", Theme: "Ocio"},
		},
	},
	{
		ID:   "profesiones",
		Name: "Profesiones y oficios",
		Pairs: []WordPair{
			{Civil: "Doctor", Impostor: "Enfermero", Theme: "Salud"},
			{Civil: "Chef", Impostor: "Cocinero", Theme: "Cocina"},
			{Civil: "Ingeniero", Impostor: "Arquitecto", Theme: "Planeacion"},
			{Civil: "Profesor", Impostor: "Tutor", Theme: "Educacion"},
			{Civil: "Piloto", Impostor: "Capitan", Theme: "Transporte"},
			{Civil: "Fotografo", Impostor: "Camarografo", Theme: "Visual"},
			{Civil: "Periodista", Impostor: "Reportero", Theme: "Medios"},
			{Civil: "Abogado", Impostor: "Notario", Theme: "Legal"},
			{Civil: "Carpintero", Impostor: "Ebanista", Theme: "Madera"},
			{Civil: "Jardinero", Impostor: "Florista", Theme: "Verde"},
		},
	},
	{
		ID:   "juegos-geek",
		Name: "Juegos y geek",
		Pairs: []WordPair{
			{Civil: "Minecraft", Impostor: "Roblox", Theme: "Sandbox"},
			{Civil: "Switch", Impostor: "PlayStation", Theme: "Consolas"},
			{Civil: "VR", Impostor: "AR", Theme: "Inmersion"},
			{Civil: "Battle Royale", Impostor: "Survival", Theme: "Generos"},
			{Civil: "Puzzle", Impostor: "Tetris", Theme: "Logica"},
			{Civil: "E-sports", Impostor: "Arcade", Theme: "Competencia"},
			{Civil: "Rol", Impostor: "Dungeon", Theme: "Mesa"},
			{Civil: "Estrategia", Impostor: "RTS", Theme: "PC"},
			{Civil: "Pokemon", Impostor: "Digimon", Theme: "Monstruos"},
			{Civil: "Mario", Impostor: "Luigi", Theme: "Nintendo"},
		},
	},
	{
		ID:   "transporte",
		Name: "Vehiculos y transporte",
		Pairs: []WordPair{
			{Civil: "Avion", Impostor: "Helicoptero", Theme: "Aire"},
			{Civil: "Camion", Impostor: "Tren", Theme: "Carga"},
			{Civil: "Taxi", Impostor: "Uber", Theme: "Ciudad"},
			{Civil: "Bicicleta", Impostor: "Patineta", Theme: "Urbano"},
			{Civil: "Autobus", Impostor: "Tranvia", Theme: "Publico"},
			{Civil: "Metro", Impostor: "Cercanias", Theme: "Publico"},
			{Civil: "Moto", Impostor: "Scooter", Theme: "Dos ruedas"},
			{Civil: "Barco", Impostor: "Ferry", Theme: "Agua"},
			{Civil: "Cohete", Impostor: "Satelite", Theme: "Espacio"},
			{Civil: "Velero", Impostor: "Yate", Theme: "Mar"},
		},
	},
	{
		ID:   "ciencia-espacio",
		Name: "Ciencia y espacio",
		Pairs: []WordPair{
			{Civil: "Laboratorio", Impostor: "Observatorio", Theme: "Lugares"},
			{Civil: "Microscopio", Impostor: "Telescopio", Theme: "Instrumentos"},
			{Civil: "ADN", Impostor: "Proteina", Theme: "Biologia"},
			{Civil: "Robot", Impostor: "Drone", Theme: "Futuro"},
			{Civil: "Eclipse", Impostor: "Equinoccio", Theme: "Cielo"},
			{Civil: "Astronauta", Impostor: "Cosmonauta", Theme: "Espacio"},
			{Civil: "Quimica", Impostor: "Fisica", Theme: "Ciencia"},
			{Civil: "Gravedad", Impostor: "Inercia", Theme: "Fuerzas"},
			{Civil: "Cohete", Impostor: "Sonda", Theme: "Exploracion"},
			{Civil: "Planeta", Impostor: "Asteroide", Theme: "Espacio"},
		},
	},
	{
		ID:   "fiesta-ocio",
		Name: "Fiesta y ocio",
		Pairs: []WordPair{
			{Civil: "Discoteca", Impostor: "Bar", Theme: "Noche"},
			{Civil: "Karaoke", Impostor: "Serenata", Theme: "Musica"},
			{Civil: "Picnic", Impostor: "BBQ", Theme: "Comida"},
			{Civil: "Casino", Impostor: "Bingo", Theme: "Juegos"},
			{Civil: "Carnaval", Impostor: "Feria", Theme: "Eventos"},
			{Civil: "Festival", Impostor: "Concierto", Theme: "Musica"},
			{Civil: "Spa", Impostor: "Sauna", Theme: "Relax"},
			{Civil: "Patinaje", Impostor: "Bolos", Theme: "Ocio"},
			{Civil: "Escape room", Impostor: "Laser tag", Theme: "Juegos"},
			{Civil: "Brunch", Impostor: "Coffee break", Theme: "Comida"},
		},
	},
	{
		ID:   "historia-cultura",
		Name: "Historia y cultura",
		Pairs: []WordPair{
			{Civil: "Piramide", Impostor: "Templo", Theme: "Antiguo"},
			{Civil: "Opera", Impostor: "Sinfonia", Theme: "Musica"},
			{Civil: "Mural", Impostor: "Grafiti", Theme: "Arte"},
			{Civil: "Monarquia", Impostor: "Imperio", Theme: "Gobierno"},
			{Civil: "Revolucion", Impostor: "Golpe", Theme: "Historia"},
			{Civil: "Mitologia", Impostor: "Leyenda", Theme: "Relatos"},
			{Civil: "Gladiador", Impostor: "Samurai", Theme: "Guerreros"},
			{Civil: "Pergamino", Impostor: "Manuscrito", Theme: "Escritura"},
			{Civil: "Reloj solar", Impostor: "Calendario", Theme: "Tiempo"},
			{Civil: "Castillo", Impostor: "Fortaleza", Theme: "Construcciones"},
		},
	},
}
